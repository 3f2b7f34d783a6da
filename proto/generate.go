// Package proto holds the wire messages of the Nakama transport.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative tienlen.proto
