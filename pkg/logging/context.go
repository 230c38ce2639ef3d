package logging

import (
	"context"
)

type ctxKeyDetails struct{}

// detailsNode links the details of a ContextWith call to the ones attached before it.
type detailsNode struct {
	parent  *detailsNode
	details []Detail
}

// ContextWith attaches logging details to the context,
// every log entry made with the returned context will include them.
func ContextWith(ctx context.Context, ds ...Detail) context.Context {
	if len(ds) == 0 {
		return ctx
	}
	parent, _ := ctx.Value(ctxKeyDetails{}).(*detailsNode)
	return context.WithValue(ctx, ctxKeyDetails{}, &detailsNode{parent: parent, details: ds})
}

// detailsOf returns the attached details, oldest first.
func detailsOf(ctx context.Context) []Detail {
	if ctx == nil {
		return nil
	}
	var nodes []*detailsNode
	for n, _ := ctx.Value(ctxKeyDetails{}).(*detailsNode); n != nil; n = n.parent {
		nodes = append(nodes, n)
	}
	var ds []Detail
	for i := len(nodes) - 1; i >= 0; i-- {
		ds = append(ds, nodes[i].details...)
	}
	return ds
}
