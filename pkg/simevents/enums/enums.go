// Package enums holds the symbolic vocabularies the simulation reports as small
// integer codes. Every table is built once at init and only read afterwards, so
// lookups are safe from any number of goroutines.
package enums

import "fmt"

// Unknown is the symbol name returned for codes missing from a table.
const Unknown = "Unknown"

// Domain names one code table.
type Domain string

const (
	DomainActorType               Domain = "actorType"
	DomainOutfitType              Domain = "outfitType"
	DomainKillType                Domain = "killType"
	DomainDeathContext            Domain = "deathContext"
	DomainDeathType               Domain = "deathType"
	DomainWeaponAnimationCategory Domain = "weaponAnimationCategory"
	DomainWeaponType              Domain = "weaponType"
	DomainSecurityRecorderEvent   Domain = "securityRecorderEvent"
)

// Symbol is the resolved form of a raw code.
type Symbol struct {
	Domain Domain
	Code   int
	Name   string
}

// Known reports whether the code was found in its domain's table.
func (s Symbol) Known() bool {
	return s.Name != Unknown
}

func (s Symbol) String() string {
	if !s.Known() {
		return fmt.Sprintf("%s(%d)", Unknown, s.Code)
	}
	return s.Name
}

var registry = map[Domain]map[int]string{
	DomainActorType: {
		0: "Civilian",
		1: "Guard",
		2: "Hitman",
	},
	DomainOutfitType: {
		0: "None",
		1: "Suit",
		2: "Guard",
		3: "Worker",
		4: "Waiter",
		5: "LucasGrey",
	},
	DomainKillType: {
		0:  "Undefined",
		1:  "Throw",
		2:  "Fiberwire",
		3:  "PullOverLedge",
		4:  "PushOverLedge",
		5:  "KnockOut",
		6:  "ChokeOut",
		7:  "SnapNeck",
		8:  "Stab",
		9:  "Shot",
		10: "Explosion",
		11: "Poison",
		12: "Electrocution",
		13: "Drowning",
		14: "Accident",
	},
	DomainDeathContext: {
		0: "Undefined",
		1: "NotHero",
		2: "Hidden",
		3: "Accident",
		4: "Murder",
	},
	DomainDeathType: {
		0: "Undefined",
		1: "Pacify",
		2: "Kill",
		3: "BloodyKill",
	},
	DomainWeaponAnimationCategory: {
		0: "Undefined",
		1: "Pistol",
		2: "Revolver",
		3: "SMG2H",
		4: "SMG1H",
		5: "Rifle",
		6: "Sniper",
		7: "ShotgunPump",
		8: "ShotgunSemi",
	},
	DomainWeaponType: {
		0: "Handgun",
		1: "Slowgun",
		2: "AssaultRifle",
		3: "SMG",
		4: "Sniper",
		5: "RPG",
		6: "Knife",
		7: "Shotgun",
		8: "Spotter",
	},
	DomainSecurityRecorderEvent: {
		0: "Spotted",
		1: "Erased",
		2: "Destroyed",
		3: "CameraDestroyed",
		4: "Disabled",
	},
}

// Resolve maps a code to its symbol. It never fails: codes outside the table
// (and unknown domains) come back with Name set to Unknown.
func Resolve(domain Domain, code int) Symbol {
	name, ok := registry[domain][code]
	if !ok {
		name = Unknown
	}

	return Symbol{Domain: domain, Code: code, Name: name}
}

// Domains lists every registered domain.
func Domains() []Domain {
	return []Domain{
		DomainActorType,
		DomainOutfitType,
		DomainKillType,
		DomainDeathContext,
		DomainDeathType,
		DomainWeaponAnimationCategory,
		DomainWeaponType,
		DomainSecurityRecorderEvent,
	}
}

// Codes returns a copy of a domain's table.
func Codes(domain Domain) map[int]string {
	table := registry[domain]
	out := make(map[int]string, len(table))
	for code, name := range table {
		out[code] = name
	}
	return out
}
