// Package ent holds the generated Ent client for ProcureFlow.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --feature sql/lock,sql/execquery ./schema
