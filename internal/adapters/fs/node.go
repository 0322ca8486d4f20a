package fs

import (
	"context"

	"github.com/access-ci/nvport/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	ProberNodeID    graft.ID = "adapter.fs.prober"
	ValidatorNodeID graft.ID = "adapter.fs.validator"
	HasherNodeID    graft.ID = "adapter.fs.hasher"
	WriterNodeID    graft.ID = "adapter.fs.writer"
)

func init() {
	graft.Register(graft.Node[ports.Prober]{
		ID:        ProberNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Prober, error) {
			return NewProber(), nil
		},
	})

	graft.Register(graft.Node[ports.ImageValidator]{
		ID:        ValidatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ImageValidator, error) {
			return NewValidator(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.TreeWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TreeWriter, error) {
			return NewWriter(), nil
		},
	})
}
