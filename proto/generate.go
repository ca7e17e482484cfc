// Package proto carries the service definitions. Stubs are generated into
// gen/posters/v1 next to the ent client under gen/ent.
package proto

//go:generate protoc --proto_path=. --go_out=.. --go_opt=module=github.com/posters-science/poster-tracker --go-grpc_out=.. --go-grpc_opt=module=github.com/posters-science/poster-tracker posters/v1/posters.proto
