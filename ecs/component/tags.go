package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type LeaderTag struct{}

var LeaderTagComponent = NewComponent[LeaderTag]()

type DroneTag struct{}

var DroneTagComponent = NewComponent[DroneTag]()
