package handlers

// HandlerBundle groups the handler sets the route registration consumes.
type HandlerBundle struct {
	Pricing  *PricingHandler
	Booking  *BookingHandler
	Cleaner  *CleanerHandler
	Schedule *ScheduleHandler
	Team     *TeamHandler
}
