package api

import (
	"context"
	"encoding/json"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// call sends a typed request-reply message to a module's service container.
func call[Req, Resp any](ctx context.Context, container mono.ServiceContainer, name string, req *Req, resp *Resp) error {
	return helper.CallRequestReplyService(
		ctx,
		container,
		name,
		json.Marshal,
		json.Unmarshal,
		req,
		resp,
	)
}
