package messaging

const (
	ExchangeName     = "waitlist"
	JoinedRoutingKey = "waitlist.joined"
	LeftRoutingKey   = "waitlist.left"
	JoinedQueueName  = "waitlist_joined_queue"
	LeftQueueName    = "waitlist_left_queue"
)
