package netprobe

import (
	"context"

	"github.com/access-ci/nvport/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.netprobe"

func init() {
	graft.Register(graft.Node[ports.NetProbe]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.NetProbe, error) {
			return NewProbe(), nil
		},
	})
}
