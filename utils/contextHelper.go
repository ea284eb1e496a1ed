package utils

import (
	"context"

	"github.com/mmdatafocus/payroll_sync/appctx"
)

func GetRunIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, appctx.ContextKeyRunId)
}

func SetRunIdInContext(ctx context.Context, runId string) context.Context {
	return appctx.Set(ctx, appctx.ContextKeyRunId, runId)
}
