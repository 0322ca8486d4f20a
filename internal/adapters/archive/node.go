package archive

import (
	"context"

	"github.com/access-ci/nvport/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.archive"

func init() {
	graft.Register(graft.Node[ports.Archiver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Archiver, error) {
			return NewZipper(), nil
		},
	})
}
