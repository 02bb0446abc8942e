package memdb

import (
	"github.com/hedisam/ringqueue/internal/custompromauto"
)

var (
	pushedItems    = custompromauto.Counter("items_pushed_total", "Total number of items pushed to the queue")
	rejectedPushes = custompromauto.Counter("pushes_rejected_total", "Total number of pushes rejected because the queue was full")
	poppedItems    = custompromauto.Counter("items_popped_total", "Total number of items removed from the front of the queue")
	emptyAccesses  = custompromauto.Counter("empty_accesses_total", "Total number of front/back/pop calls made against an empty queue")

	queueSize     = custompromauto.GaugeVec("queue_size", "Current number of items in the queue", "queue")
	queueCapacity = custompromauto.GaugeVec("queue_capacity", "Fixed capacity of the queue", "queue")
)
