// Package handler 按业务域划分的 HTTP Handler，子包分别对应后台与用户端接口
//
// 该文件让 `swag init --dir ./internal/handler` 能把本目录识别为 Go 包。
package handler
