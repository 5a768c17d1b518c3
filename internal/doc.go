// Package internal documents the dev event store internals.
//
// The internal tree is organized by responsibility:
// - api: HTTP handlers, middleware, problem rendering, and routing
// - domain: event model, validation, and id generation
// - storage: the JSON file store
// - config, metrics: shared infrastructure
//
// Code in internal/ is not meant for external import.
package internal
