package scraper

import "sidco-backend/lib/telemetry"

var tracer = telemetry.Tracer("sidco.services.sidco.scraper")
