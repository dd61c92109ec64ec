// Package tracing 提供 OpenTelemetry 分布式追踪单元测试
package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInit_Disabled(t *testing.T) {
	tracer, err := Init(&Config{ServiceName: "disabled", Enabled: false})
	require.NoError(t, err)
	assert.Nil(t, tracer.provider)
	assert.NoError(t, tracer.Shutdown(context.Background()))

	// 未启用时 Start 仍然可用
	_, span := Start(context.Background(), "noop")
	assert.NotPanics(t, func() { End(span, errors.New("ignored")) })
}

func TestInit_DefaultConfig(t *testing.T) {
	tracer, err := Init(nil)
	require.NoError(t, err)
	assert.Equal(t, "taskmall-admin", tracer.config.ServiceName)
}

func TestInit_WithExporterRecordsSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tracer, err := Init(&Config{
		ServiceName: "test-service",
		SampleRate:  1.0,
		Enabled:     true,
		Exporter:    exporter,
	})
	require.NoError(t, err)

	_, span := Start(context.Background(), "resource.list", WithCollection("categories"), WithAction("list"))
	End(span, nil)

	_, failed := Start(context.Background(), "resource.delete", WithCollection("categories"), WithRecordID(9))
	End(failed, errors.New("not found"))

	require.NoError(t, tracer.Shutdown(context.Background()))

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "resource.list", spans[0].Name)
	assert.Equal(t, codes.Unset, spans[0].Status.Code)
	assert.Equal(t, "resource.delete", spans[1].Name)
	assert.Equal(t, codes.Error, spans[1].Status.Code)
	assert.Contains(t, spans[1].Attributes, WithRecordID(9))
}

func TestSampler(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), sampler(1.0).Description())
	assert.Equal(t, sdktrace.NeverSample().Description(), sampler(0).Description())
	assert.Equal(t, sdktrace.TraceIDRatioBased(0.5).Description(), sampler(0.5).Description())
}
