// Package proto holds the model-serving sidecar contract. Run protoc
// to regenerate the Go bindings after editing llm.proto.
package llmv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
