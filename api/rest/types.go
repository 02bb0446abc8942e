package rest

// request and response types are defined below
// these types can be defined as protobuf messages in a production system (specifically if using gRPC + gRPC-gateway)

type Item struct {
	ID         string `json:"id"`
	Value      string `json:"value"`
	EnqueuedAt string `json:"enqueuedAt"`
}

type PushRequest struct {
	Value string `json:"value"`
}

type PushResponse struct {
	Item *Item `json:"item"`
}

type PopRequest struct{}

type PopResponse struct {
	Item *Item `json:"item"`
}

type PeekRequest struct{}

type PeekResponse struct {
	Item *Item `json:"item"`
}

type ListRequest struct{}

type ListResponse struct {
	Items []*Item `json:"items"`
	Size  int     `json:"size"`
}

type StatsRequest struct{}

type StatsResponse struct {
	Size     int  `json:"size"`
	Capacity int  `json:"capacity"`
	Empty    bool `json:"empty"`
	Full     bool `json:"full"`
}

type RawRequest struct{}

// RawResponse lists every physical slot of the queue storage. Unused slots are null.
// Slot order is not queue order.
type RawResponse struct {
	Slots []*Item `json:"slots"`
}
