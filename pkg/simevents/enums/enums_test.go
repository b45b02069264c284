package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveKnownCodes(t *testing.T) {
	tests := []struct {
		domain Domain
		code   int
		name   string
	}{
		{DomainActorType, 1, "Guard"},
		{DomainOutfitType, 5, "LucasGrey"},
		{DomainKillType, 6, "ChokeOut"},
		{DomainDeathContext, 4, "Murder"},
		{DomainDeathType, 3, "BloodyKill"},
		{DomainWeaponAnimationCategory, 3, "SMG2H"},
		{DomainWeaponType, 8, "Spotter"},
		{DomainSecurityRecorderEvent, 3, "CameraDestroyed"},
	}

	for _, tt := range tests {
		t.Run(string(tt.domain), func(t *testing.T) {
			s := Resolve(tt.domain, tt.code)
			assert.True(t, s.Known())
			assert.Equal(t, tt.name, s.Name)
			assert.Equal(t, tt.code, s.Code)
			assert.Equal(t, tt.domain, s.Domain)
		})
	}
}

func TestResolveUnknownCode(t *testing.T) {
	s := Resolve(DomainKillType, 99)

	assert.False(t, s.Known())
	assert.Equal(t, Unknown, s.Name)
	assert.Equal(t, "Unknown(99)", s.String())

	s = Resolve(Domain("noSuchDomain"), 0)
	assert.False(t, s.Known())
}

func TestTypedCodes(t *testing.T) {
	assert.Equal(t, "Guard", ActorTypeGuard.String())
	assert.Equal(t, "ChokeOut", KillTypeChokeOut.String())
	assert.Equal(t, "Murder", DeathContextMurder.String())
	assert.True(t, Known(WeaponTypeSniper))

	unknown := WeaponType(42)
	assert.False(t, unknown.Known())
	assert.False(t, Known(unknown))
	assert.Equal(t, Unknown, unknown.String())
}

func TestEveryDomainHasATable(t *testing.T) {
	for _, d := range Domains() {
		assert.NotEmpty(t, Codes(d), "domain %s", d)
	}
}

func TestCodesReturnsCopy(t *testing.T) {
	codes := Codes(DomainActorType)
	codes[1] = "Overwritten"

	assert.Equal(t, "Guard", Resolve(DomainActorType, 1).Name)
}
