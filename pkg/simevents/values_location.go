package simevents

type DoorBrokenEventValue struct {
	LocationImbued
}

func (DoorBrokenEventValue) VariantName() string { return "DoorBrokenEventValue" }
func (DoorBrokenEventValue) simEventValue() {}

func decodeDoorBroken(p Payload) (DoorBrokenEventValue, error) {
	return extend(p, decodeLocation, func(l LocationImbued, _ *reader) DoorBrokenEventValue {
		return DoorBrokenEventValue{LocationImbued: l}
	})
}

type DoorUnlockedEventValue struct {
	LocationImbued
	KeyItemRepositoryId Optional[string]
}

func (DoorUnlockedEventValue) VariantName() string { return "DoorUnlockedEventValue" }
func (DoorUnlockedEventValue) simEventValue() {}

func decodeDoorUnlocked(p Payload) (DoorUnlockedEventValue, error) {
	return extend(p, decodeLocation, func(l LocationImbued, r *reader) DoorUnlockedEventValue {
		return DoorUnlockedEventValue{
			LocationImbued:      l,
			KeyItemRepositoryId: r.optStr("KeyItemRepositoryId"),
		}
	})
}

type LeavingLevelEventValue struct {
	LocationImbued
	ExitName Optional[string]
}

func (LeavingLevelEventValue) VariantName() string { return "LeavingLevelEventValue" }
func (LeavingLevelEventValue) simEventValue() {}

func decodeLeavingLevel(p Payload) (LeavingLevelEventValue, error) {
	return extend(p, decodeLocation, func(l LocationImbued, r *reader) LeavingLevelEventValue {
		return LeavingLevelEventValue{
			LocationImbued: l,
			ExitName:       r.optStr("ExitName"),
		}
	})
}

type MovementStateChangedEventValue struct {
	LocationImbued
	PreviousState Optional[string]
}

func (MovementStateChangedEventValue) VariantName() string { return "MovementStateChangedEventValue" }
func (MovementStateChangedEventValue) simEventValue() {}

func decodeMovementStateChanged(p Payload) (MovementStateChangedEventValue, error) {
	return extend(p, decodeLocation, func(l LocationImbued, r *reader) MovementStateChangedEventValue {
		return MovementStateChangedEventValue{
			LocationImbued: l,
			PreviousState:  r.optStr("PreviousState"),
		}
	})
}

// OnTakeDamageEventValue is the hit that was just taken plus the earlier ones.
type OnTakeDamageEventValue struct {
	DamageHistory
	History []DamageHistory
	Health  Optional[float64]
}

func (OnTakeDamageEventValue) VariantName() string { return "OnTakeDamageEventValue" }
func (OnTakeDamageEventValue) simEventValue() {}

func decodeOnTakeDamage(p Payload) (OnTakeDamageEventValue, error) {
	return extend(p, decodeDamageHistory, func(d DamageHistory, r *reader) OnTakeDamageEventValue {
		return OnTakeDamageEventValue{
			DamageHistory: d,
			History:       objectList(r, "History", decodeDamageHistory),
			Health:        r.optNumber("Health"),
		}
	})
}
