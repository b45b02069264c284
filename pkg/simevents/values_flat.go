package simevents

import "github.com/newrelic/newrelic-labs-simevents/pkg/simevents/enums"

type DisguiseEventValue struct {
	RepositoryId string
	OutfitType   Optional[enums.OutfitType]
	IsSuit       Optional[bool]
	Title        Optional[string]
}

func (DisguiseEventValue) VariantName() string { return "DisguiseEventValue" }
func (DisguiseEventValue) simEventValue() {}

func decodeDisguise(p Payload) (DisguiseEventValue, error) {
	return flat(p, func(r *reader) DisguiseEventValue {
		return DisguiseEventValue{
			RepositoryId: r.str("RepositoryId"),
			OutfitType:   optionalEnum[enums.OutfitType](r, "OutfitType"),
			IsSuit:       r.optBool("IsSuit"),
			Title:        r.optStr("Title"),
		}
	})
}

type DisguiseBlownEventValue struct {
	RepositoryId string
}

func (DisguiseBlownEventValue) VariantName() string { return "DisguiseBlownEventValue" }
func (DisguiseBlownEventValue) simEventValue() {}

func decodeDisguiseBlown(p Payload) (DisguiseBlownEventValue, error) {
	return flat(p, func(r *reader) DisguiseBlownEventValue {
		return DisguiseBlownEventValue{RepositoryId: r.str("RepositoryId")}
	})
}

type StartingSuitEventValue struct {
	RepositoryId string
}

func (StartingSuitEventValue) VariantName() string { return "StartingSuitEventValue" }
func (StartingSuitEventValue) simEventValue() {}

func decodeStartingSuit(p Payload) (StartingSuitEventValue, error) {
	return flat(p, func(r *reader) StartingSuitEventValue {
		return StartingSuitEventValue{RepositoryId: r.str("RepositoryId")}
	})
}

// SpottedEventValue lists the repository ids of the actors who saw the hero.
type SpottedEventValue struct {
	Spotters []string
}

func (SpottedEventValue) VariantName() string { return "SpottedEventValue" }
func (SpottedEventValue) simEventValue() {}

func decodeSpotted(p Payload) (SpottedEventValue, error) {
	return flat(p, func(r *reader) SpottedEventValue {
		return SpottedEventValue{Spotters: r.strs("Spotters")}
	})
}

type WitnessesEventValue struct {
	Witnesses []string
}

func (WitnessesEventValue) VariantName() string { return "WitnessesEventValue" }
func (WitnessesEventValue) simEventValue() {}

func decodeWitnesses(p Payload) (WitnessesEventValue, error) {
	return flat(p, func(r *reader) WitnessesEventValue {
		return WitnessesEventValue{Witnesses: r.strs("Witnesses")}
	})
}

// SecuritySystemRecorderEventValue uses lowercase keys on the wire.
type SecuritySystemRecorderEventValue struct {
	Event    enums.SecurityRecorderEvent
	Camera   Optional[uint64]
	Recorder Optional[uint64]
}

func (SecuritySystemRecorderEventValue) VariantName() string {
	return "SecuritySystemRecorderEventValue"
}
func (SecuritySystemRecorderEventValue) simEventValue() {}

func decodeSecuritySystemRecorder(p Payload) (SecuritySystemRecorderEventValue, error) {
	return flat(p, func(r *reader) SecuritySystemRecorderEventValue {
		return SecuritySystemRecorderEventValue{
			Event:    requiredEnum[enums.SecurityRecorderEvent](r, "event"),
			Camera:   r.optID("camera"),
			Recorder: r.optID("recorder"),
		}
	})
}

type TrespassingEventValue struct {
	IsTrespassing bool
	RoomId        Optional[int64]
}

func (TrespassingEventValue) VariantName() string { return "TrespassingEventValue" }
func (TrespassingEventValue) simEventValue() {}

func decodeTrespassing(p Payload) (TrespassingEventValue, error) {
	return flat(p, func(r *reader) TrespassingEventValue {
		return TrespassingEventValue{
			IsTrespassing: r.boolean("IsTrespassing"),
			RoomId:        r.optInt("RoomId"),
		}
	})
}

type ContractStartEventValue struct {
	ContractId        string
	ContractSessionId Optional[string]
	ContractType      Optional[string]
	Location          Optional[string]
	Difficulty        Optional[string]
	DifficultyLevel   Optional[float64]
	Disguise          Optional[string]
	SelectedCharacter Optional[string]
	Loadout           []string
}

func (ContractStartEventValue) VariantName() string { return "ContractStartEventValue" }
func (ContractStartEventValue) simEventValue() {}

func decodeContractStart(p Payload) (ContractStartEventValue, error) {
	return flat(p, func(r *reader) ContractStartEventValue {
		return ContractStartEventValue{
			ContractId:        r.str("ContractId"),
			ContractSessionId: r.optStr("ContractSessionId"),
			ContractType:      r.optStr("ContractType"),
			Location:          r.optStr("Location"),
			Difficulty:        r.optStr("Difficulty"),
			DifficultyLevel:   r.optNumber("DifficultyLevel"),
			Disguise:          r.optStr("Disguise"),
			SelectedCharacter: r.optStr("SelectedCharacter"),
			Loadout:           r.strs("Loadout"),
		}
	})
}

type ContractEndEventValue struct {
	ContractSessionId Optional[string]
	Result            Optional[string]
}

func (ContractEndEventValue) VariantName() string { return "ContractEndEventValue" }
func (ContractEndEventValue) simEventValue() {}

func decodeContractEnd(p Payload) (ContractEndEventValue, error) {
	return flat(p, func(r *reader) ContractEndEventValue {
		return ContractEndEventValue{
			ContractSessionId: r.optStr("ContractSessionId"),
			Result:            r.optStr("Result"),
		}
	})
}

type ContractFailedEventValue struct {
	ContractSessionId Optional[string]
	Reason            Optional[string]
}

func (ContractFailedEventValue) VariantName() string { return "ContractFailedEventValue" }
func (ContractFailedEventValue) simEventValue() {}

func decodeContractFailed(p Payload) (ContractFailedEventValue, error) {
	return flat(p, func(r *reader) ContractFailedEventValue {
		return ContractFailedEventValue{
			ContractSessionId: r.optStr("ContractSessionId"),
			Reason:            r.optStr("Reason"),
		}
	})
}

type ObjectiveCompletedEventValue struct {
	Id            string
	ObjectiveType Optional[string]
	IsOptional    Optional[bool]
}

func (ObjectiveCompletedEventValue) VariantName() string { return "ObjectiveCompletedEventValue" }
func (ObjectiveCompletedEventValue) simEventValue() {}

func decodeObjectiveCompleted(p Payload) (ObjectiveCompletedEventValue, error) {
	return flat(p, func(r *reader) ObjectiveCompletedEventValue {
		return ObjectiveCompletedEventValue{
			Id:            r.str("Id"),
			ObjectiveType: r.optStr("ObjectiveType"),
			IsOptional:    r.optBool("IsOptional"),
		}
	})
}

type ChallengeCompletedEventValue struct {
	ChallengeId   string
	ChallengeName Optional[string]
	XPGain        Optional[int64]
}

func (ChallengeCompletedEventValue) VariantName() string { return "ChallengeCompletedEventValue" }
func (ChallengeCompletedEventValue) simEventValue() {}

func decodeChallengeCompleted(p Payload) (ChallengeCompletedEventValue, error) {
	return flat(p, func(r *reader) ChallengeCompletedEventValue {
		return ChallengeCompletedEventValue{
			ChallengeId:   r.str("ChallengeId"),
			ChallengeName: r.optStr("ChallengeName"),
			XPGain:        r.optInt("XPGain"),
		}
	})
}

// SetpiecesEventValue reports a level set piece being triggered. The wire keys
// carry a _metricvalue suffix.
type SetpiecesEventValue struct {
	RepositoryId    string
	Name            Optional[string]
	SetpieceHelpers Optional[string]
	SetpieceType    Optional[string]
	ToolsUsed       Optional[string]
	ItemTriggered   Optional[string]
	Position        Optional[Vector3]
}

func (SetpiecesEventValue) VariantName() string { return "SetpiecesEventValue" }
func (SetpiecesEventValue) simEventValue() {}

func decodeSetpieces(p Payload) (SetpiecesEventValue, error) {
	return flat(p, func(r *reader) SetpiecesEventValue {
		return SetpiecesEventValue{
			RepositoryId:    r.str("RepositoryId"),
			Name:            r.optStr("name_metricvalue"),
			SetpieceHelpers: r.optStr("setpieceHelper_metricvalue"),
			SetpieceType:    r.optStr("setpieceType_metricvalue"),
			ToolsUsed:       r.optStr("toolUsed_metricvalue"),
			ItemTriggered:   r.optStr("Item_triggered_metricvalue"),
			Position:        r.optVector("Position"),
		}
	})
}

type OpportunityEventsEventValue struct {
	RepositoryId string
	Event        string
}

func (OpportunityEventsEventValue) VariantName() string { return "OpportunityEventsEventValue" }
func (OpportunityEventsEventValue) simEventValue() {}

func decodeOpportunityEvents(p Payload) (OpportunityEventsEventValue, error) {
	return flat(p, func(r *reader) OpportunityEventsEventValue {
		return OpportunityEventsEventValue{
			RepositoryId: r.str("RepositoryId"),
			Event:        r.str("Event"),
		}
	})
}

type LevelSetupEventValue struct {
	ContractName string
	Location     Optional[string]
	Event        Optional[string]
}

func (LevelSetupEventValue) VariantName() string { return "LevelSetupEventValue" }
func (LevelSetupEventValue) simEventValue() {}

func decodeLevelSetup(p Payload) (LevelSetupEventValue, error) {
	return flat(p, func(r *reader) LevelSetupEventValue {
		return LevelSetupEventValue{
			ContractName: r.str("Contract_Name_metricvalue"),
			Location:     r.optStr("Location_MetricValue"),
			Event:        r.optStr("Event_metricvalue"),
		}
	})
}

type AmbientChangedEventValue struct {
	PreviousAmbient int64
	CurrentAmbient  int64
}

func (AmbientChangedEventValue) VariantName() string { return "AmbientChangedEventValue" }
func (AmbientChangedEventValue) simEventValue() {}

func decodeAmbientChanged(p Payload) (AmbientChangedEventValue, error) {
	return flat(p, func(r *reader) AmbientChangedEventValue {
		return AmbientChangedEventValue{
			PreviousAmbient: r.integer("PreviousAmbient"),
			CurrentAmbient:  r.integer("CurrentAmbient"),
		}
	})
}

type ExitGateEventValue struct {
	ExitName Optional[string]
}

func (ExitGateEventValue) VariantName() string { return "ExitGateEventValue" }
func (ExitGateEventValue) simEventValue() {}

func decodeExitGate(p Payload) (ExitGateEventValue, error) {
	return flat(p, func(r *reader) ExitGateEventValue {
		return ExitGateEventValue{ExitName: r.optStr("ExitName")}
	})
}
