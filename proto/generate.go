// Package inferencev1 holds the gRPC contract with the inference sidecar.
// Generated code is produced by `go generate ./proto` and is not checked in.
package inferencev1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative inference.proto
