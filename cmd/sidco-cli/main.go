package main

import (
	"sidco-backend/cmd/sidco-cli/commands"
	"sidco-backend/lib/serviceutil"
	"sidco-backend/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()
	telemetry.SetupFromEnv(ctx, "sidco-cli")
	telemetry.InitSlog(false)
	commands.ExecuteContext(ctx)
}
