package entity

// ActivityType is the enumerated category of a tracked activity.
// Values are persisted verbatim, so they must stay stable.
type ActivityType string

// Cardio / endurance.
const (
	ActivityWalking           ActivityType = "WALKING"
	ActivityJogging           ActivityType = "JOGGING"
	ActivityRunning           ActivityType = "RUNNING"
	ActivityTreadmillRunning  ActivityType = "TREADMILL_RUNNING"
	ActivityCycling           ActivityType = "CYCLING"
	ActivityStationaryCycling ActivityType = "STATIONARY_CYCLING"
	ActivitySwimming          ActivityType = "SWIMMING"
	ActivityRowing            ActivityType = "ROWING"
	ActivityElliptical        ActivityType = "ELLIPTICAL"
	ActivityStairClimbing     ActivityType = "STAIR_CLIMBING"
	ActivityCardioGeneral     ActivityType = "CARDIO_GENERAL"
)

// Strength / resistance.
const (
	ActivityWeightTraining     ActivityType = "WEIGHT_TRAINING"
	ActivityBodyweightTraining ActivityType = "BODYWEIGHT_TRAINING"
	ActivityPowerlifting       ActivityType = "POWERLIFTING"
	ActivityOlympicLifting     ActivityType = "OLYMPIC_LIFTING"
	ActivityCrossfit           ActivityType = "CROSSFIT"
	ActivityCircuitTraining    ActivityType = "CIRCUIT_TRAINING"
	ActivityFunctionalTraining ActivityType = "FUNCTIONAL_TRAINING"
)

// Flexibility / mind-body.
const (
	ActivityYoga       ActivityType = "YOGA"
	ActivityPilates    ActivityType = "PILATES"
	ActivityStretching ActivityType = "STRETCHING"
	ActivityMobility   ActivityType = "MOBILITY"
	ActivityBreathwork ActivityType = "BREATHWORK"
	ActivityMeditation ActivityType = "MEDITATION"
)

// High intensity.
const (
	ActivityHIIT   ActivityType = "HIIT"
	ActivityTabata ActivityType = "TABATA"
)

// Sports.
const (
	ActivityCricket     ActivityType = "CRICKET"
	ActivityFootball    ActivityType = "FOOTBALL"
	ActivityBasketball  ActivityType = "BASKETBALL"
	ActivityVolleyball  ActivityType = "VOLLEYBALL"
	ActivityTableTennis ActivityType = "TABLE_TENNIS"
	ActivityBadminton   ActivityType = "BADMINTON"
	ActivityTennis      ActivityType = "TENNIS"
	ActivitySquash      ActivityType = "SQUASH"
	ActivityHockey      ActivityType = "HOCKEY"
	ActivityBaseball    ActivityType = "BASEBALL"
)

// Combat / martial arts.
const (
	ActivityBoxing     ActivityType = "BOXING"
	ActivityKickboxing ActivityType = "KICKBOXING"
	ActivityMMA        ActivityType = "MMA"
	ActivityWrestling  ActivityType = "WRESTLING"
	ActivityJudo       ActivityType = "JUDO"
	ActivityKarate     ActivityType = "KARATE"
	ActivityTaekwondo  ActivityType = "TAEKWONDO"
)

// Outdoor / adventure.
const (
	ActivityHiking       ActivityType = "HIKING"
	ActivityTrekking     ActivityType = "TREKKING"
	ActivityClimbing     ActivityType = "CLIMBING"
	ActivitySkippingRope ActivityType = "SKIPPING_ROPE"
	ActivitySurfing      ActivityType = "SURFING"
	ActivitySkating      ActivityType = "SKATING"
	ActivitySkiing       ActivityType = "SKIING"
)

// Dance / aerobic.
const (
	ActivityDance    ActivityType = "DANCE"
	ActivityZumba    ActivityType = "ZUMBA"
	ActivityAerobics ActivityType = "AEROBICS"
)

// Daily activity.
const (
	ActivityHousework     ActivityType = "HOUSEWORK"
	ActivityYardWork      ActivityType = "YARD_WORK"
	ActivityActiveCommute ActivityType = "ACTIVE_COMMUTE"
	ActivityOther         ActivityType = "OTHER"
)

// activityTypes is the closed set of valid values; keyed for O(1) validation.
var activityTypes = func() map[ActivityType]struct{} {
	all := []ActivityType{
		ActivityWalking, ActivityJogging, ActivityRunning, ActivityTreadmillRunning,
		ActivityCycling, ActivityStationaryCycling, ActivitySwimming, ActivityRowing,
		ActivityElliptical, ActivityStairClimbing, ActivityCardioGeneral,
		ActivityWeightTraining, ActivityBodyweightTraining, ActivityPowerlifting,
		ActivityOlympicLifting, ActivityCrossfit, ActivityCircuitTraining, ActivityFunctionalTraining,
		ActivityYoga, ActivityPilates, ActivityStretching, ActivityMobility,
		ActivityBreathwork, ActivityMeditation,
		ActivityHIIT, ActivityTabata,
		ActivityCricket, ActivityFootball, ActivityBasketball, ActivityVolleyball,
		ActivityTableTennis, ActivityBadminton, ActivityTennis, ActivitySquash,
		ActivityHockey, ActivityBaseball,
		ActivityBoxing, ActivityKickboxing, ActivityMMA, ActivityWrestling,
		ActivityJudo, ActivityKarate, ActivityTaekwondo,
		ActivityHiking, ActivityTrekking, ActivityClimbing, ActivitySkippingRope,
		ActivitySurfing, ActivitySkating, ActivitySkiing,
		ActivityDance, ActivityZumba, ActivityAerobics,
		ActivityHousework, ActivityYardWork, ActivityActiveCommute,
		ActivityOther,
	}

	set := make(map[ActivityType]struct{}, len(all))
	for _, t := range all {
		set[t] = struct{}{}
	}

	return set
}()

// String returns the string representation of the ActivityType.
func (t ActivityType) String() string {
	return string(t)
}

// IsValid checks if the ActivityType is a valid value.
func (t ActivityType) IsValid() bool {
	_, ok := activityTypes[t]

	return ok
}
