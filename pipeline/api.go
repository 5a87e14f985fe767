package pipeline

import (
	"github.com/lonng/tagcodec/protocal/args"
)

// HandlerFunc is handler function, it may rewrite slots of the
// argument list in place
type HandlerFunc func(a *args.Args) error

// Pipeline defines the interface of an argument pipeline
type Pipeline interface {
	// Inbound return the inbound pipeline chain
	Inbound() PipelineChain

	// Outbound return the outbound pipeline chain
	Outbound() PipelineChain
}

// PipelineChain defines the interface of a pipeline chain
type PipelineChain interface {
	// PushFront push a function to the front of the chain
	PushFront(h HandlerFunc)

	// PushBack push a function to the end of the chain
	PushBack(h HandlerFunc)

	// Process argument list with all handler functions
	Process(a *args.Args) error
}
