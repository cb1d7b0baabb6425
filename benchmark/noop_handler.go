package benchmark

import (
	"github.com/philipp01105/pluginlog/core"
	"github.com/philipp01105/pluginlog/handler"
)

type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(r *core.Record) error {
	_ = len(r.Message)
	return nil
}

func (h *noopHandler) Enabled(core.SinkLevel) bool {
	return true
}

func (h *noopHandler) Close() error {
	return nil
}
