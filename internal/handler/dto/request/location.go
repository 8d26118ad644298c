package request

type LocationsQuery struct {
	Lat *float64 `form:"lat"`
	Lng *float64 `form:"lng"`
}

// DistanceQuery binds GET /api/distance. Destinations are pipe separated.
type DistanceQuery struct {
	Origin       string `form:"origin" binding:"required"`
	Destinations string `form:"destinations" binding:"required"`
}

func (q *DistanceQuery) DestinationList() []string {
	return SplitList(q.Destinations, "|")
}
