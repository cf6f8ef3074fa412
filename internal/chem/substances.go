package chem

// Well-known substance names used by the built-in content tables. Mixture
// keys are open-ended; these constants only pin the spellings the default
// rules and classifier groups rely on.
const (
	SubWater    Substance = "H2O"
	SubMinerals Substance = "MINERALS"
	SubSalt     Substance = "SALT"

	SubGlucose  Substance = "GLUCOSE"
	SubStarch   Substance = "STARCH"
	SubProtein  Substance = "PROTEIN"
	SubFat      Substance = "FAT"
	SubFiber    Substance = "FIBER"
	SubVitamin  Substance = "VITAMIN"
	SubToxin    Substance = "TOXIN"
	SubEthanol  Substance = "ETHANOL"
	SubCaffeine Substance = "CAFFEINE"

	SubGlycogen     Substance = "GLYCOGEN"
	SubCortisol     Substance = "CORTISOL"
	SubSerotonin    Substance = "SEROTONIN"
	SubAdrenaline   Substance = "ADRENALINE"
	SubInflammation Substance = "INFLAMMATION"
	SubOxidant      Substance = "OXIDANT"

	SubOreIron   Substance = "ORE_FE"
	SubOreCopper Substance = "ORE_CU"
	SubOreGold   Substance = "ORE_AU"
	SubIron      Substance = "FE"
	SubCopper    Substance = "CU"
	SubGold      Substance = "AU"
	SubSlag      Substance = "SLAG"

	SubCarbon    Substance = "CARBON"
	SubCharcoal  Substance = "CHARCOAL"
	SubCarbonGas Substance = "CO2"
	SubAsh       Substance = "ASH"

	SubStone     Substance = "STONE"
	SubSilica    Substance = "SILICA"
	SubClay      Substance = "CLAY"
	SubCellulose Substance = "CELLULOSE"
	SubLignin    Substance = "LIGNIN"
	SubResin     Substance = "RESIN"
)

// KnownSubstances lists every substance the built-in content references, in a
// fixed order. Content packs may introduce additional names.
func KnownSubstances() []Substance {
	return []Substance{
		SubWater, SubMinerals, SubSalt,
		SubGlucose, SubStarch, SubProtein, SubFat, SubFiber, SubVitamin,
		SubToxin, SubEthanol, SubCaffeine,
		SubGlycogen, SubCortisol, SubSerotonin, SubAdrenaline,
		SubInflammation, SubOxidant,
		SubOreIron, SubOreCopper, SubOreGold,
		SubIron, SubCopper, SubGold, SubSlag,
		SubCarbon, SubCharcoal, SubCarbonGas, SubAsh,
		SubStone, SubSilica, SubClay,
		SubCellulose, SubLignin, SubResin,
	}
}
