package metrics

// Namespace prefixes every metric exported by the service
const Namespace = "rpg_equipment"

// Metric names
const (
	MetricNameItemsCreated         = "items_created_total"
	MetricNameItemCreateFailures   = "item_create_failures_total"
	MetricNameItemCreateDuration   = "item_create_duration_seconds"
	MetricNamePrototypesSynced     = "item_prototypes_synced_total"
	MetricNameEventPublishFailures = "event_publish_failures_total"
)

// Metric help text
const (
	HelpTextItemsCreated         = "Total number of items created from prototypes"
	HelpTextItemCreateFailures   = "Total number of failed item creations"
	HelpTextItemCreateDuration   = "Item creation latency in seconds"
	HelpTextPrototypesSynced     = "Total number of item prototypes written by catalog syncs"
	HelpTextEventPublishFailures = "Total number of domain events that could not be published"
)

// Label names
const (
	LabelItemType  = "item_type"
	LabelCode      = "code"
	LabelSource    = "source"
	LabelEventType = "event_type"
)

// CreateLatencyBuckets covers a handful of Redis round trips
var CreateLatencyBuckets = []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1}
