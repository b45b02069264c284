package simevents

import "github.com/newrelic/newrelic-labs-simevents/pkg/simevents/enums"

// Field group names, reported in DecodeError.Group.
const (
	GroupLocation      = "LocationImbued"
	GroupActorInfo     = "ActorInfoImbued"
	GroupItemInfo      = "ItemInfoImbued"
	GroupDamageHistory = "DamageHistory"
	GroupActorIdentity = "ActorIdentity"
)

// Vector3 is a world-space position.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// LocationImbued places the hero, and optionally an actor and an item, in the
// level.
type LocationImbued struct {
	RoomId        int64
	HeroPosition  Vector3
	Area          Optional[string]
	HeroArea      Optional[string]
	ActorPosition Optional[Vector3]
	ActorArea     Optional[string]
	ItemPosition  Optional[Vector3]
	ItemArea      Optional[string]
	IsCrouching   Optional[bool]
	IsIdle        Optional[bool]
	IsRunning     Optional[bool]
	IsWalking     Optional[bool]
	IsTrespassing Optional[bool]
}

// ActorInfoImbued describes the NPC an event is about.
type ActorInfoImbued struct {
	ActorName                string
	RepositoryId             string
	ActorType                enums.ActorType
	OutfitRepositoryId       Optional[string]
	ActorWeaponIndex         Optional[int64]
	ActorHasDisguise         Optional[bool]
	ActorIsAuthorityFigure   Optional[bool]
	ActorIsDead              Optional[bool]
	ActorIsFemale            Optional[bool]
	ActorIsPacified          Optional[bool]
	IsTarget                 Optional[bool]
	ActorOutfitAllowsWeapons Optional[bool]
	ActorWeaponUnholstered   Optional[bool]
}

// ItemInfoImbued describes an item instance, usually a weapon.
type ItemInfoImbued struct {
	ItemRepositoryId        string
	ItemInstanceId          uint64
	ItemName                Optional[string]
	WeaponAnimFront         Optional[string]
	WeaponAnimBack          Optional[string]
	IsScopedWeapon          Optional[bool]
	ItemCategory            Optional[string]
	WeaponAnimationCategory Optional[enums.WeaponAnimationCategory]
	WeaponType              Optional[enums.WeaponType]
	IsCloseCombatWeapon     Optional[bool]
	IsFiberWire             Optional[bool]
	IsFirearm               Optional[bool]
	RepoItemType            Optional[string]
	RepoItemSize            Optional[string]
	RepoPerks               []string
}

// DamageHistory is one hit.
type DamageHistory struct {
	InstanceId     uint64
	RepositoryId   string
	Explosive      Optional[bool]
	Headshot       Optional[bool]
	Accident       Optional[bool]
	WeaponSilenced Optional[bool]
	Projectile     Optional[bool]
	Sniper         Optional[bool]
	ThroughWall    Optional[bool]
	BodyPartId     Optional[int64]
	TotalDamage    Optional[float64]
}

// ActorIdentity is the minimal reference to an NPC.
type ActorIdentity struct {
	ActorId      uint64
	RepositoryId string
	IsCrowdActor Optional[bool]
}

// groupErr tags a failure with the group that produced it.
func groupErr(group string, err error) error {
	if err == nil {
		return nil
	}

	de, ok := AsDecodeError(err)
	if !ok {
		return err
	}

	out := *de
	out.Group = group
	return &out
}

func decodeLocation(p Payload) (LocationImbued, error) {
	r := newReader(p)

	v := LocationImbued{
		RoomId:        r.integer("RoomId"),
		HeroPosition:  r.vector("HeroPosition"),
		Area:          r.optStr("Area"),
		HeroArea:      r.optStr("HeroArea"),
		ActorPosition: r.optVector("ActorPosition"),
		ActorArea:     r.optStr("ActorArea"),
		ItemPosition:  r.optVector("ItemPosition"),
		ItemArea:      r.optStr("ItemArea"),
		IsCrouching:   r.optBool("IsCrouching"),
		IsIdle:        r.optBool("IsIdle"),
		IsRunning:     r.optBool("IsRunning"),
		IsWalking:     r.optBool("IsWalking"),
		IsTrespassing: r.optBool("IsTrespassing"),
	}

	if err := r.Err(); err != nil {
		return LocationImbued{}, groupErr(GroupLocation, err)
	}
	return v, nil
}

func decodeActorInfo(p Payload) (ActorInfoImbued, error) {
	r := newReader(p)

	v := ActorInfoImbued{
		ActorName:                r.str("ActorName"),
		RepositoryId:             r.str("RepositoryId"),
		ActorType:                requiredEnum[enums.ActorType](r, "ActorType"),
		OutfitRepositoryId:       r.optStr("OutfitRepositoryId"),
		ActorWeaponIndex:         r.optInt("ActorWeaponIndex"),
		ActorHasDisguise:         r.optBool("ActorHasDisguise"),
		ActorIsAuthorityFigure:   r.optBool("ActorIsAuthorityFigure"),
		ActorIsDead:              r.optBool("ActorIsDead"),
		ActorIsFemale:            r.optBool("ActorIsFemale"),
		ActorIsPacified:          r.optBool("ActorIsPacified"),
		IsTarget:                 r.optBool("IsTarget"),
		ActorOutfitAllowsWeapons: r.optBool("ActorOutfitAllowsWeapons"),
		ActorWeaponUnholstered:   r.optBool("ActorWeaponUnholstered"),
	}

	if err := r.Err(); err != nil {
		return ActorInfoImbued{}, groupErr(GroupActorInfo, err)
	}
	return v, nil
}

func decodeItemInfo(p Payload) (ItemInfoImbued, error) {
	r := newReader(p)

	v := ItemInfoImbued{
		ItemRepositoryId:        r.str("ItemRepositoryId"),
		ItemInstanceId:          r.id("ItemInstanceId"),
		ItemName:                r.optStr("ItemName"),
		WeaponAnimFront:         r.optStr("WeaponAnimFront"),
		WeaponAnimBack:          r.optStr("WeaponAnimBack"),
		IsScopedWeapon:          r.optBool("IsScopedWeapon"),
		ItemCategory:            r.optStr("ItemCategory"),
		WeaponAnimationCategory: optionalEnum[enums.WeaponAnimationCategory](r, "WeaponAnimationCategory"),
		WeaponType:              optionalEnum[enums.WeaponType](r, "WeaponType"),
		IsCloseCombatWeapon:     r.optBool("IsCloseCombatWeapon"),
		IsFiberWire:             r.optBool("IsFiberWire"),
		IsFirearm:               r.optBool("IsFirearm"),
		RepoItemType:            r.optStr("RepoItemType"),
		RepoItemSize:            r.optStr("RepoItemSize"),
		RepoPerks:               r.strs("RepoPerks"),
	}

	if err := r.Err(); err != nil {
		return ItemInfoImbued{}, groupErr(GroupItemInfo, err)
	}
	return v, nil
}

func decodeDamageHistory(p Payload) (DamageHistory, error) {
	r := newReader(p)

	v := DamageHistory{
		InstanceId:     r.id("InstanceId"),
		RepositoryId:   r.str("RepositoryId"),
		Explosive:      r.optBool("Explosive"),
		Headshot:       r.optBool("Headshot"),
		Accident:       r.optBool("Accident"),
		WeaponSilenced: r.optBool("WeaponSilenced"),
		Projectile:     r.optBool("Projectile"),
		Sniper:         r.optBool("Sniper"),
		ThroughWall:    r.optBool("ThroughWall"),
		BodyPartId:     r.optInt("BodyPartId"),
		TotalDamage:    r.optNumber("TotalDamage"),
	}

	if err := r.Err(); err != nil {
		return DamageHistory{}, groupErr(GroupDamageHistory, err)
	}
	return v, nil
}

func decodeActorIdentity(p Payload) (ActorIdentity, error) {
	r := newReader(p)

	v := ActorIdentity{
		ActorId:      r.id("ActorId"),
		RepositoryId: r.str("RepositoryId"),
		IsCrowdActor: r.optBool("IsCrowdActor"),
	}

	if err := r.Err(); err != nil {
		return ActorIdentity{}, groupErr(GroupActorIdentity, err)
	}
	return v, nil
}

// Field groups decoded on their own, for callers holding a payload they already
// know the shape of.
func DecodeLocation(p Payload) (LocationImbued, error) { return decodeLocation(p) }
func DecodeActorInfo(p Payload) (ActorInfoImbued, error) { return decodeActorInfo(p) }
func DecodeItemInfo(p Payload) (ItemInfoImbued, error) { return decodeItemInfo(p) }
func DecodeDamageHistory(p Payload) (DamageHistory, error) { return decodeDamageHistory(p) }
func DecodeActorIdentity(p Payload) (ActorIdentity, error) { return decodeActorIdentity(p) }
