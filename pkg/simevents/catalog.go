package simevents

// Required keys per field group. They must match what the group decoders
// read as required.
var (
	locationKeys      = []string{"RoomId", "HeroPosition"}
	actorInfoKeys     = []string{"ActorName", "RepositoryId", "ActorType"}
	itemInfoKeys      = []string{"ItemRepositoryId", "ItemInstanceId"}
	damageKeys        = []string{"InstanceId", "RepositoryId"}
	actorIdentityKeys = []string{"ActorId", "RepositoryId"}
	killDetailsKeys   = []string{"KillType", "KillContext", "KillClass"}
)

// VariantInfo describes one catalog entry.
type VariantInfo struct {
	// EventName is the name the simulation emits.
	EventName string
	// Variant is the Go-facing name, also accepted by the dispatcher. Empty
	// for marker events.
	Variant string
	// Required lists the top-level payload keys a decode cannot do without.
	Required []string
	// Marker events carry no value.
	Marker bool
}

type decodeFunc func(Payload) (Value, error)

type variant struct {
	info   VariantInfo
	decode decodeFunc
}

func entry[V Value](event string, decode func(Payload) (V, error), required ...[]string) variant {
	var zero V

	var keys []string
	for _, group := range required {
		keys = append(keys, group...)
	}

	return variant{
		info: VariantInfo{
			EventName: event,
			Variant:   zero.VariantName(),
			Required:  dedupe(keys),
		},
		decode: func(p Payload) (Value, error) {
			v, err := decode(p)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}

func marker(event string) variant {
	return variant{
		info: VariantInfo{EventName: event, Marker: true},
		decode: func(Payload) (Value, error) {
			return nil, nil
		},
	}
}

func keys(k ...string) []string {
	return k
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))

	for _, k := range in {
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}

	return out
}

func catalog() []variant {
	return []variant{
		entry("Pacify", decodePacify, actorInfoKeys, killDetailsKeys),
		entry("Kill", decodeKill, actorInfoKeys, killDetailsKeys),
		entry("Noticed_Pacify", actorOnly(func(a ActorInfoImbued) NoticedPacifyEventValue {
			return NoticedPacifyEventValue{a}
		}), actorInfoKeys),
		entry("Unnoticed_Pacify", actorOnly(func(a ActorInfoImbued) UnnoticedPacifyEventValue {
			return UnnoticedPacifyEventValue{a}
		}), actorInfoKeys),
		entry("Unnoticed_Kill", actorOnly(func(a ActorInfoImbued) UnnoticedKillEventValue {
			return UnnoticedKillEventValue{a}
		}), actorInfoKeys),
		entry("TargetEscaping", decodeTargetEscaping, actorInfoKeys),
		entry("BodyFound", decodeBodyFound, keys("DeadBody")),
		entry("AccidentBodyFound", decodeAccidentBodyFound, keys("DeadBody")),
		entry("MurderedBodySeen", decodeMurderedBodySeen, keys("Witness", "DeadBodyRepositoryId")),
		entry("DragBodyMove", decodeDragBodyMove, actorInfoKeys, locationKeys),

		entry("DeadBodySeen", decodeDeadBodySeen, actorIdentityKeys),
		entry("BodyHidden", decodeBodyHidden, actorIdentityKeys),
		entry("BodyBagged", identityOnly(func(id ActorIdentity) BodyBaggedEventValue {
			return BodyBaggedEventValue{id}
		}), actorIdentityKeys),
		entry("Actorsick", decodeActorSick, actorIdentityKeys),
		entry("Dart_Hit", decodeDartHit, actorIdentityKeys),
		entry("CrowdNPC_Died", identityOnly(func(id ActorIdentity) CrowdNPCDiedEventValue {
			return CrowdNPCDiedEventValue{id}
		}), actorIdentityKeys),
		entry("Investigate_Curious", decodeInvestigateCurious, actorIdentityKeys),

		entry("Disguise", decodeDisguise, keys("RepositoryId")),
		entry("DisguiseBlown", decodeDisguiseBlown, keys("RepositoryId")),
		entry("StartingSuit", decodeStartingSuit, keys("RepositoryId")),
		entry("Spotted", decodeSpotted),
		entry("Witnesses", decodeWitnesses),
		entry("SecuritySystemRecorder", decodeSecuritySystemRecorder, keys("event")),
		entry("Trespassing", decodeTrespassing, keys("IsTrespassing")),

		entry("Door_Broken", decodeDoorBroken, locationKeys),
		entry("Door_Unlocked", decodeDoorUnlocked, locationKeys),
		entry("LeavingLevel", decodeLeavingLevel, locationKeys),
		entry("MovementStateChanged", decodeMovementStateChanged, locationKeys),
		entry("OnTakeDamage", decodeOnTakeDamage, damageKeys),

		entry("OnWeaponReload", itemAtLocation(func(i ItemInfoImbued, l LocationImbued) OnWeaponReloadEventValue {
			return OnWeaponReloadEventValue{Item: i, Location: l}
		}), itemInfoKeys, locationKeys),
		entry("ItemPickedUp", itemAtLocation(func(i ItemInfoImbued, l LocationImbued) ItemPickedUpEventValue {
			return ItemPickedUpEventValue{Item: i, Location: l}
		}), itemInfoKeys, locationKeys),
		entry("ItemDropped", itemAtLocation(func(i ItemInfoImbued, l LocationImbued) ItemDroppedEventValue {
			return ItemDroppedEventValue{Item: i, Location: l}
		}), itemInfoKeys, locationKeys),
		entry("ItemThrown", itemAtLocation(func(i ItemInfoImbued, l LocationImbued) ItemThrownEventValue {
			return ItemThrownEventValue{Item: i, Location: l}
		}), itemInfoKeys, locationKeys),
		entry("FirstMissedShot", itemAtLocation(func(i ItemInfoImbued, l LocationImbued) FirstMissedShotEventValue {
			return FirstMissedShotEventValue{Item: i, Location: l}
		}), itemInfoKeys, locationKeys),
		entry("FirstNonHeadshot", itemAtLocation(func(i ItemInfoImbued, l LocationImbued) FirstNonHeadshotEventValue {
			return FirstNonHeadshotEventValue{Item: i, Location: l}
		}), itemInfoKeys, locationKeys),
		entry("ItemRemovedFromInventory", itemOnly(func(i ItemInfoImbued) ItemRemovedFromInventoryEventValue {
			return ItemRemovedFromInventoryEventValue{i}
		}), itemInfoKeys),
		entry("ItemDestroyed", itemOnly(func(i ItemInfoImbued) ItemDestroyedEventValue {
			return ItemDestroyedEventValue{i}
		}), itemInfoKeys),
		entry("HoldingIllegalWeapon", itemOnly(func(i ItemInfoImbued) HoldingIllegalWeaponEventValue {
			return HoldingIllegalWeaponEventValue{i}
		}), itemInfoKeys),

		entry("ContractStart", decodeContractStart, keys("ContractId")),
		entry("ContractEnd", decodeContractEnd),
		entry("ContractFailed", decodeContractFailed),
		entry("ObjectiveCompleted", decodeObjectiveCompleted, keys("Id")),
		entry("ChallengeCompleted", decodeChallengeCompleted, keys("ChallengeId")),
		entry("setpieces", decodeSetpieces, keys("RepositoryId")),
		entry("OpportunityEvents", decodeOpportunityEvents, keys("RepositoryId", "Event")),
		entry("Level_Setup_Events", decodeLevelSetup, keys("Contract_Name_metricvalue")),
		entry("AmbientChanged", decodeAmbientChanged, keys("PreviousAmbient", "CurrentAmbient")),
		entry("ExitGate", decodeExitGate),

		marker("IntroCutEnd"),
		marker("Agility_Start"),
		marker("Drain_Pipe_Climbed"),
	}
}
