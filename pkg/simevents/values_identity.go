package simevents

type DeadBodySeenEventValue struct {
	ActorIdentity
	WitnessRepositoryId Optional[string]
}

func (DeadBodySeenEventValue) VariantName() string { return "DeadBodySeenEventValue" }
func (DeadBodySeenEventValue) simEventValue() {}

func decodeDeadBodySeen(p Payload) (DeadBodySeenEventValue, error) {
	return extend(p, decodeActorIdentity, func(id ActorIdentity, r *reader) DeadBodySeenEventValue {
		return DeadBodySeenEventValue{
			ActorIdentity:       id,
			WitnessRepositoryId: r.optStr("WitnessRepositoryId"),
		}
	})
}

type BodyHiddenEventValue struct {
	ActorIdentity
	ContainerRepositoryId Optional[string]
}

func (BodyHiddenEventValue) VariantName() string { return "BodyHiddenEventValue" }
func (BodyHiddenEventValue) simEventValue() {}

func decodeBodyHidden(p Payload) (BodyHiddenEventValue, error) {
	return extend(p, decodeActorIdentity, func(id ActorIdentity, r *reader) BodyHiddenEventValue {
		return BodyHiddenEventValue{
			ActorIdentity:         id,
			ContainerRepositoryId: r.optStr("ContainerRepositoryId"),
		}
	})
}

type BodyBaggedEventValue struct {
	ActorIdentity
}

func (BodyBaggedEventValue) VariantName() string { return "BodyBaggedEventValue" }
func (BodyBaggedEventValue) simEventValue() {}

type ActorSickEventValue struct {
	ActorIdentity
	IsSameFloor Optional[bool]
	IsTarget    Optional[bool]
}

func (ActorSickEventValue) VariantName() string { return "ActorSickEventValue" }
func (ActorSickEventValue) simEventValue() {}

func decodeActorSick(p Payload) (ActorSickEventValue, error) {
	return extend(p, decodeActorIdentity, func(id ActorIdentity, r *reader) ActorSickEventValue {
		return ActorSickEventValue{
			ActorIdentity: id,
			IsSameFloor:   r.optBool("IsSameFloor"),
			IsTarget:      r.optBool("IsTarget"),
		}
	})
}

type DartHitEventValue struct {
	ActorIdentity
	Blind    Optional[bool]
	Sedative Optional[bool]
	Sick     Optional[bool]
}

func (DartHitEventValue) VariantName() string { return "DartHitEventValue" }
func (DartHitEventValue) simEventValue() {}

func decodeDartHit(p Payload) (DartHitEventValue, error) {
	return extend(p, decodeActorIdentity, func(id ActorIdentity, r *reader) DartHitEventValue {
		return DartHitEventValue{
			ActorIdentity: id,
			Blind:         r.optBool("Blind"),
			Sedative:      r.optBool("Sedative"),
			Sick:          r.optBool("Sick"),
		}
	})
}

type CrowdNPCDiedEventValue struct {
	ActorIdentity
}

func (CrowdNPCDiedEventValue) VariantName() string { return "CrowdNPCDiedEventValue" }
func (CrowdNPCDiedEventValue) simEventValue() {}

type InvestigateCuriousEventValue struct {
	ActorIdentity
	SituationType Optional[string]
}

func (InvestigateCuriousEventValue) VariantName() string { return "InvestigateCuriousEventValue" }
func (InvestigateCuriousEventValue) simEventValue() {}

func decodeInvestigateCurious(p Payload) (InvestigateCuriousEventValue, error) {
	return extend(p, decodeActorIdentity, func(id ActorIdentity, r *reader) InvestigateCuriousEventValue {
		return InvestigateCuriousEventValue{
			ActorIdentity: id,
			SituationType: r.optStr("SituationType"),
		}
	})
}

// identityOnly builds the decoder for variants that are exactly an identity.
func identityOnly[V any](wrap func(ActorIdentity) V) func(Payload) (V, error) {
	return func(p Payload) (V, error) {
		return extend(p, decodeActorIdentity, func(id ActorIdentity, _ *reader) V {
			return wrap(id)
		})
	}
}
