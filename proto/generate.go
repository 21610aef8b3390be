// Package proto holds the wire definitions. Generated code lands under
// gen/proto and is not committed.
package proto

//go:generate protoc --proto_path=. --go_out=../gen/proto --go_opt=paths=source_relative --go-grpc_out=../gen/proto --go-grpc_opt=paths=source_relative captures/v1/captures.proto
