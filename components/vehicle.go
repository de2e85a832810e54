package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/chaseview/record"
	"github.com/automoto/chaseview/vehicle"
)

// VehicleData holds the telemetry sources the viewer observes. In live
// mode all four interfaces point at the Rig; in replay mode they point
// at the Player and LinksSrc is nil.
type VehicleData struct {
	Chassis  vehicle.Chassis
	Power    vehicle.Powertrain
	Drive    vehicle.Driveline
	LinksSrc vehicle.LinkSource

	Rig    *vehicle.Rig     // nil when replaying
	Player *record.Player   // nil when driving live
	Rec    *record.Recorder // nil unless capturing
	Clock  float64          // sim time, seconds
}

var Vehicle = donburi.NewComponentType[VehicleData]()
