package enums

// Code is satisfied by every typed code in this package.
type Code interface {
	~int
	Domain() Domain
}

// Known reports whether a typed code resolves in its own domain.
func Known[C Code](c C) bool {
	return Resolve(c.Domain(), int(c)).Known()
}

// ActorType classifies an NPC.
type ActorType int

const (
	ActorTypeCivilian ActorType = 0
	ActorTypeGuard    ActorType = 1
	ActorTypeHitman   ActorType = 2
)

func (ActorType) Domain() Domain { return DomainActorType }
func (a ActorType) Symbol() Symbol { return Resolve(DomainActorType, int(a)) }
func (a ActorType) Known() bool { return a.Symbol().Known() }
func (a ActorType) String() string { return a.Symbol().Name }

// OutfitType classifies a disguise.
type OutfitType int

const (
	OutfitTypeNone      OutfitType = 0
	OutfitTypeSuit      OutfitType = 1
	OutfitTypeGuard     OutfitType = 2
	OutfitTypeWorker    OutfitType = 3
	OutfitTypeWaiter    OutfitType = 4
	OutfitTypeLucasGrey OutfitType = 5
)

func (OutfitType) Domain() Domain { return DomainOutfitType }
func (o OutfitType) Symbol() Symbol { return Resolve(DomainOutfitType, int(o)) }
func (o OutfitType) Known() bool { return o.Symbol().Known() }
func (o OutfitType) String() string { return o.Symbol().Name }

// KillType is the physical method of a kill or pacification.
type KillType int

const (
	KillTypeUndefined     KillType = 0
	KillTypeThrow         KillType = 1
	KillTypeFiberwire     KillType = 2
	KillTypePullOverLedge KillType = 3
	KillTypePushOverLedge KillType = 4
	KillTypeKnockOut      KillType = 5
	KillTypeChokeOut      KillType = 6
	KillTypeSnapNeck      KillType = 7
	KillTypeStab          KillType = 8
	KillTypeShot          KillType = 9
	KillTypeExplosion     KillType = 10
	KillTypePoison        KillType = 11
	KillTypeElectrocution KillType = 12
	KillTypeDrowning      KillType = 13
	KillTypeAccident      KillType = 14
)

func (KillType) Domain() Domain { return DomainKillType }
func (k KillType) Symbol() Symbol { return Resolve(DomainKillType, int(k)) }
func (k KillType) Known() bool { return k.Symbol().Known() }
func (k KillType) String() string { return k.Symbol().Name }

// DeathContext describes how a death was perceived.
type DeathContext int

const (
	DeathContextUndefined DeathContext = 0
	DeathContextNotHero   DeathContext = 1
	DeathContextHidden    DeathContext = 2
	DeathContextAccident  DeathContext = 3
	DeathContextMurder    DeathContext = 4
)

func (DeathContext) Domain() Domain { return DomainDeathContext }
func (d DeathContext) Symbol() Symbol { return Resolve(DomainDeathContext, int(d)) }
func (d DeathContext) Known() bool { return d.Symbol().Known() }
func (d DeathContext) String() string { return d.Symbol().Name }

// DeathType separates pacifications from kills.
type DeathType int

const (
	DeathTypeUndefined  DeathType = 0
	DeathTypePacify     DeathType = 1
	DeathTypeKill       DeathType = 2
	DeathTypeBloodyKill DeathType = 3
)

func (DeathType) Domain() Domain { return DomainDeathType }
func (d DeathType) Symbol() Symbol { return Resolve(DomainDeathType, int(d)) }
func (d DeathType) Known() bool { return d.Symbol().Known() }
func (d DeathType) String() string { return d.Symbol().Name }

// WeaponAnimationCategory is the animation set a weapon is held with.
type WeaponAnimationCategory int

const (
	WeaponAnimationCategoryUndefined   WeaponAnimationCategory = 0
	WeaponAnimationCategoryPistol      WeaponAnimationCategory = 1
	WeaponAnimationCategoryRevolver    WeaponAnimationCategory = 2
	WeaponAnimationCategorySMG2H       WeaponAnimationCategory = 3
	WeaponAnimationCategorySMG1H       WeaponAnimationCategory = 4
	WeaponAnimationCategoryRifle       WeaponAnimationCategory = 5
	WeaponAnimationCategorySniper      WeaponAnimationCategory = 6
	WeaponAnimationCategoryShotgunPump WeaponAnimationCategory = 7
	WeaponAnimationCategoryShotgunSemi WeaponAnimationCategory = 8
)

func (WeaponAnimationCategory) Domain() Domain { return DomainWeaponAnimationCategory }
func (w WeaponAnimationCategory) Symbol() Symbol {
	return Resolve(DomainWeaponAnimationCategory, int(w))
}
func (w WeaponAnimationCategory) Known() bool { return w.Symbol().Known() }
func (w WeaponAnimationCategory) String() string { return w.Symbol().Name }

// WeaponType is the broad weapon class.
type WeaponType int

const (
	WeaponTypeHandgun      WeaponType = 0
	WeaponTypeSlowgun      WeaponType = 1
	WeaponTypeAssaultRifle WeaponType = 2
	WeaponTypeSMG          WeaponType = 3
	WeaponTypeSniper       WeaponType = 4
	WeaponTypeRPG          WeaponType = 5
	WeaponTypeKnife        WeaponType = 6
	WeaponTypeShotgun      WeaponType = 7
	WeaponTypeSpotter      WeaponType = 8
)

func (WeaponType) Domain() Domain { return DomainWeaponType }
func (w WeaponType) Symbol() Symbol { return Resolve(DomainWeaponType, int(w)) }
func (w WeaponType) Known() bool { return w.Symbol().Known() }
func (w WeaponType) String() string { return w.Symbol().Name }

// SecurityRecorderEvent is what happened to the security recorder.
type SecurityRecorderEvent int

const (
	SecurityRecorderSpotted         SecurityRecorderEvent = 0
	SecurityRecorderErased          SecurityRecorderEvent = 1
	SecurityRecorderDestroyed       SecurityRecorderEvent = 2
	SecurityRecorderCameraDestroyed SecurityRecorderEvent = 3
	SecurityRecorderDisabled        SecurityRecorderEvent = 4
)

func (SecurityRecorderEvent) Domain() Domain { return DomainSecurityRecorderEvent }
func (s SecurityRecorderEvent) Symbol() Symbol {
	return Resolve(DomainSecurityRecorderEvent, int(s))
}
func (s SecurityRecorderEvent) Known() bool { return s.Symbol().Known() }
func (s SecurityRecorderEvent) String() string { return s.Symbol().Name }
