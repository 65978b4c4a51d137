package go_ingalls

import "github.com/gehtsoft-usa/go_ingalls/bmath/unit"

//Projectile is a bullet as the Ingalls method sees it: its ballistic coefficient and weight.
//
//Diameter and length are optional. Only the sectional density and the optimal rifling
//twist need them.
type Projectile struct {
	bc            BallisticCoefficient
	weight        unit.Weight
	hasDimensions bool
	diameter      unit.Distance
	length        unit.Distance
}

//CreateProjectile creates a bullet of unknown dimensions
func CreateProjectile(bc BallisticCoefficient, weight unit.Weight) Projectile {
	return Projectile{bc: bc, weight: weight}
}

//CreateProjectileWithDimensions creates a bullet with the caliber and length known
func CreateProjectileWithDimensions(bc BallisticCoefficient, diameter, length unit.Distance, weight unit.Weight) Projectile {
	p := CreateProjectile(bc, weight)
	p.hasDimensions = true
	p.diameter = diameter
	p.length = length
	return p
}

//BallisticCoefficient returns the coefficient published for the bullet.
//
//The drag table of the coefficient must be the one the retardation table was built for
//(G1 for the packaged Ingalls table).
func (p Projectile) BallisticCoefficient() BallisticCoefficient {
	return p.bc
}

func (p Projectile) BulletWeight() unit.Weight {
	return p.weight
}

//BulletDiameter is zero unless HasDimensions
func (p Projectile) BulletDiameter() unit.Distance {
	return p.diameter
}

//BulletLength is zero unless HasDimensions
func (p Projectile) BulletLength() unit.Distance {
	return p.length
}

func (p Projectile) HasDimensions() bool {
	return p.hasDimensions
}

//Ammunition is a projectile loaded to a muzzle velocity
type Ammunition struct {
	bullet         Projectile
	muzzleVelocity unit.Velocity
	powderCharge   unit.Weight
}

//CreateAmmunition creates a load with no powder charge known, the recoil of
//such a load counts the bullet only
func CreateAmmunition(bullet Projectile, muzzleVelocity unit.Velocity) Ammunition {
	return CreateAmmunitionWithCharge(bullet, muzzleVelocity, unit.MustCreateWeight(0, unit.WeightGrain))
}

//CreateAmmunitionWithCharge creates a load with the powder charge weight known
func CreateAmmunitionWithCharge(bullet Projectile, muzzleVelocity unit.Velocity, powderCharge unit.Weight) Ammunition {
	return Ammunition{bullet: bullet, muzzleVelocity: muzzleVelocity, powderCharge: powderCharge}
}

func (a Ammunition) Bullet() Projectile {
	return a.bullet
}

//MuzzleVelocity is the velocity the ballistic tables start from
func (a Ammunition) MuzzleVelocity() unit.Velocity {
	return a.muzzleVelocity
}

func (a Ammunition) PowderCharge() unit.Weight {
	return a.powderCharge
}
