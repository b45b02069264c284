package simevents

import "github.com/newrelic/newrelic-labs-simevents/pkg/simevents/enums"

// KillDetails describes how an actor was taken down. Shared by pacifications
// and kills.
type KillDetails struct {
	KillType             enums.KillType
	KillContext          enums.DeathContext
	KillClass            string
	KillMethodBroad      Optional[string]
	KillMethodStrict     Optional[string]
	KillItemRepositoryId Optional[string]
	KillItemInstanceId   Optional[uint64]
	KillItemCategory     Optional[string]
	IsHeadshot           Optional[bool]
	Accident             Optional[bool]
	Explosive            Optional[bool]
	Projectile           Optional[bool]
	Sniper               Optional[bool]
	WeaponSilenced       Optional[bool]
	ThroughWall          Optional[bool]
	IsMoving             Optional[bool]
	DamageEvents         []uint64
	History              []DamageHistory
}

func decodeKillDetails(p Payload) (KillDetails, error) {
	return flat(p, func(r *reader) KillDetails {
		return KillDetails{
			KillType:             requiredEnum[enums.KillType](r, "KillType"),
			KillContext:          requiredEnum[enums.DeathContext](r, "KillContext"),
			KillClass:            r.str("KillClass"),
			KillMethodBroad:      r.optStr("KillMethodBroad"),
			KillMethodStrict:     r.optStr("KillMethodStrict"),
			KillItemRepositoryId: r.optStr("KillItemRepositoryId"),
			KillItemInstanceId:   r.optID("KillItemInstanceId"),
			KillItemCategory:     r.optStr("KillItemCategory"),
			IsHeadshot:           r.optBool("IsHeadshot"),
			Accident:             r.optBool("Accident"),
			Explosive:            r.optBool("Explosive"),
			Projectile:           r.optBool("Projectile"),
			Sniper:               r.optBool("Sniper"),
			WeaponSilenced:       r.optBool("WeaponSilenced"),
			ThroughWall:          r.optBool("ThroughWall"),
			IsMoving:             r.optBool("IsMoving"),
			DamageEvents:         r.ids("DamageEvents"),
			History:              objectList(r, "History", decodeDamageHistory),
		}
	})
}

type PacifyEventValue struct {
	ActorInfoImbued
	KillDetails
}

func (PacifyEventValue) VariantName() string { return "PacifyEventValue" }
func (PacifyEventValue) simEventValue() {}

func decodePacify(p Payload) (PacifyEventValue, error) {
	actor, kill, err := decodeComposite(p, decodeActorInfo, decodeKillDetails)
	return PacifyEventValue{ActorInfoImbued: actor, KillDetails: kill}, err
}

// KillEventValue carries everything a pacification does plus how the body
// ended up.
type KillEventValue struct {
	ActorInfoImbued
	KillDetails
	DeathType          Optional[enums.DeathType]
	SetPieceId         Optional[string]
	SetPieceType       Optional[string]
	OutfitIsHitmanSuit Optional[bool]
	BodyPartId         Optional[int64]
	TotalDamage        Optional[float64]
}

func (KillEventValue) VariantName() string { return "KillEventValue" }
func (KillEventValue) simEventValue() {}

func decodeKill(p Payload) (KillEventValue, error) {
	return extend(p, decodePacify, func(base PacifyEventValue, r *reader) KillEventValue {
		return KillEventValue{
			ActorInfoImbued:    base.ActorInfoImbued,
			KillDetails:        base.KillDetails,
			DeathType:          optionalEnum[enums.DeathType](r, "DeathType"),
			SetPieceId:         r.optStr("SetPieceId"),
			SetPieceType:       r.optStr("SetPieceType"),
			OutfitIsHitmanSuit: r.optBool("OutfitIsHitmanSuit"),
			BodyPartId:         r.optInt("BodyPartId"),
			TotalDamage:        r.optNumber("TotalDamage"),
		}
	})
}

type NoticedPacifyEventValue struct {
	ActorInfoImbued
}

func (NoticedPacifyEventValue) VariantName() string { return "NoticedPacifyEventValue" }
func (NoticedPacifyEventValue) simEventValue() {}

type UnnoticedPacifyEventValue struct {
	ActorInfoImbued
}

func (UnnoticedPacifyEventValue) VariantName() string { return "UnnoticedPacifyEventValue" }
func (UnnoticedPacifyEventValue) simEventValue() {}

type UnnoticedKillEventValue struct {
	ActorInfoImbued
}

func (UnnoticedKillEventValue) VariantName() string { return "UnnoticedKillEventValue" }
func (UnnoticedKillEventValue) simEventValue() {}

type TargetEscapingEventValue struct {
	ActorInfoImbued
	EscapeRoute Optional[string]
}

func (TargetEscapingEventValue) VariantName() string { return "TargetEscapingEventValue" }
func (TargetEscapingEventValue) simEventValue() {}

func decodeTargetEscaping(p Payload) (TargetEscapingEventValue, error) {
	return extend(p, decodeActorInfo, func(a ActorInfoImbued, r *reader) TargetEscapingEventValue {
		return TargetEscapingEventValue{
			ActorInfoImbued: a,
			EscapeRoute:     r.optStr("EscapeRoute"),
		}
	})
}

// actorOnly builds the decoder for variants that are exactly an actor.
func actorOnly[V any](wrap func(ActorInfoImbued) V) func(Payload) (V, error) {
	return func(p Payload) (V, error) {
		return extend(p, decodeActorInfo, func(a ActorInfoImbued, _ *reader) V {
			return wrap(a)
		})
	}
}

// deadBody reads the actor nested under DeadBody.
func deadBody(r *reader) ActorInfoImbued {
	obj, ok := r.object("DeadBody")
	if !ok {
		return ActorInfoImbued{}
	}

	a, err := decodeActorInfo(obj)
	if err != nil {
		r.fail(nested("DeadBody", err))
	}
	return a
}

type BodyFoundEventValue struct {
	DeadBody     ActorInfoImbued
	DeathContext Optional[enums.DeathContext]
	DeathType    Optional[enums.DeathType]
}

func (BodyFoundEventValue) VariantName() string { return "BodyFoundEventValue" }
func (BodyFoundEventValue) simEventValue() {}

func decodeBodyFound(p Payload) (BodyFoundEventValue, error) {
	return flat(p, func(r *reader) BodyFoundEventValue {
		return BodyFoundEventValue{
			DeadBody:     deadBody(r),
			DeathContext: optionalEnum[enums.DeathContext](r, "DeathContext"),
			DeathType:    optionalEnum[enums.DeathType](r, "DeathType"),
		}
	})
}

type AccidentBodyFoundEventValue struct {
	DeadBody ActorInfoImbued
}

func (AccidentBodyFoundEventValue) VariantName() string { return "AccidentBodyFoundEventValue" }
func (AccidentBodyFoundEventValue) simEventValue() {}

func decodeAccidentBodyFound(p Payload) (AccidentBodyFoundEventValue, error) {
	return flat(p, func(r *reader) AccidentBodyFoundEventValue {
		return AccidentBodyFoundEventValue{DeadBody: deadBody(r)}
	})
}

type MurderedBodySeenEventValue struct {
	Witness              string
	DeadBodyRepositoryId string
	IsWitnessTarget      Optional[bool]
	SituationType        Optional[string]
}

func (MurderedBodySeenEventValue) VariantName() string { return "MurderedBodySeenEventValue" }
func (MurderedBodySeenEventValue) simEventValue() {}

func decodeMurderedBodySeen(p Payload) (MurderedBodySeenEventValue, error) {
	return flat(p, func(r *reader) MurderedBodySeenEventValue {
		return MurderedBodySeenEventValue{
			Witness:              r.str("Witness"),
			DeadBodyRepositoryId: r.str("DeadBodyRepositoryId"),
			IsWitnessTarget:      r.optBool("IsWitnessTarget"),
			SituationType:        r.optStr("SituationType"),
		}
	})
}

type DragBodyMoveEventValue struct {
	Actor    ActorInfoImbued
	Location LocationImbued
}

func (DragBodyMoveEventValue) VariantName() string { return "DragBodyMoveEventValue" }
func (DragBodyMoveEventValue) simEventValue() {}

func decodeDragBodyMove(p Payload) (DragBodyMoveEventValue, error) {
	actor, loc, err := decodeComposite(p, decodeActorInfo, decodeLocation)
	return DragBodyMoveEventValue{Actor: actor, Location: loc}, err
}
