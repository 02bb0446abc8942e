package window

import (
	"github.com/hedisam/ringqueue/internal/custompromauto"
)

var confirmedItems = custompromauto.Counter("window_confirmed_items_total",
	"Number of items emitted after reaching the confirmation depth")

var droppedItems = custompromauto.Counter("window_dropped_items_total",
	"Number of held items dropped because a newer item did not link to them")
