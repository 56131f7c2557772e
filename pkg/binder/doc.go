// Package binder decodes HTTP request bodies into typed values.
//
// Only JSON bodies are supported. Unknown fields are tolerated so frontend
// forms can add fields without breaking older backend deployments. Callers
// cap the body size with a MaxBytesReader before binding.
package binder
