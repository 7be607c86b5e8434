// README: Trip request context shared by risk and scoring.
package trip

// Preference is what the renter cares most about when picking a car.
type Preference string

const (
	PreferComfort    Preference = "comfort"
	PreferPrice      Preference = "price"
	PreferSpace      Preference = "space"
	PreferDrivingFun Preference = "driving_fun"
	PreferSafety     Preference = "safety"
)

// TransmissionPreference mirrors the booking form: manual, automatic, or no preference.
type TransmissionPreference string

const (
	TransmissionManual TransmissionPreference = "manual"
	TransmissionAuto   TransmissionPreference = "automatic"
	TransmissionAny    TransmissionPreference = "any"
)

// DriverSkill is the renter's self-assessed confidence behind the wheel.
type DriverSkill string

const (
	SkillComfortable       DriverSkill = "comfortable"
	SkillExtraSafety       DriverSkill = "extra_safety"
	SkillConditionSpecific DriverSkill = "condition_specific"
)

// Context carries everything the renter told us about the upcoming trip.
type Context struct {
	OccupantCount     int
	LargeBagCount     int
	SmallBagCount     int
	TripLengthKm      float64
	TripLengthHours   int
	Preference        Preference
	Transmission      TransmissionPreference
	DriverSkill       DriverSkill
	ParkingDifficulty int // 0..10
}

// Weather is the forecast snapshot for the trip window.
// ConditionCode follows the OpenWeather taxonomy: 2xx thunderstorm,
// 5xx rain (>=502 heavy), 6xx snow, 7xx fog/mist, 800 clear.
type Weather struct {
	ConditionCode int
	TemperatureC  float64
	WindSpeedMps  float64
	RainMmPerH    float64
	SnowMmPerH    float64
	VisibilityM   int
}
