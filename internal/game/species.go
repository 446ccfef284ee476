package game

import "strings"

// Family is a coarse species grouping used to select default ability pools
// and group passives. Unknown ids resolve to FamilyGeneric, never an error.
type Family string

const (
	FamilyTyrannosaurid Family = "tyrannosaurid"
	FamilyRaptor        Family = "raptor"
	FamilyCeratopsian   Family = "ceratopsian"
	FamilyHadrosaur     Family = "hadrosaur"
	FamilyAnkylosaur    Family = "ankylosaur"
	FamilySauropod      Family = "sauropod"
	FamilyTherizinosaur Family = "therizinosaur"
	FamilyGeneric       Family = "generic"
)

// speciesFamilies maps species ids to their family. Built once at process
// start and never mutated, so it is safe to share across concurrent battles.
var speciesFamilies = map[string]Family{
	"tyrannosaurus":  FamilyTyrannosaurid,
	"giganotosaurus": FamilyTyrannosaurid,
	"alioramus":      FamilyTyrannosaurid,
	"daspletosaurus": FamilyTyrannosaurid,
	"tarbosaurus":    FamilyTyrannosaurid,
	"gorgosaurus":    FamilyTyrannosaurid,
	"albertosaurus":  FamilyTyrannosaurid,
	"yutyrannus":     FamilyTyrannosaurid,

	"utahraptor":     FamilyRaptor,
	"achillobator":   FamilyRaptor,
	"deinonychus":    FamilyRaptor,
	"latenivenatrix": FamilyRaptor,
	"concavenator":   FamilyRaptor,

	"triceratops":      FamilyCeratopsian,
	"albertaceratops":  FamilyCeratopsian,
	"styracosaurus":    FamilyCeratopsian,
	"pachyrhinosaurus": FamilyCeratopsian,
	"ceratosaurus":     FamilyCeratopsian,
	"diabloceratops":   FamilyCeratopsian,
	"einiosaurus":      FamilyCeratopsian,
	"kosmoceratops":    FamilyCeratopsian,
	"medusaceratops":   FamilyCeratopsian,
	"nasutoceratops":   FamilyCeratopsian,
	"regaliceratops":   FamilyCeratopsian,
	"sinoceratops":     FamilyCeratopsian,
	"torosaurus":       FamilyCeratopsian,
	"zuniceratops":     FamilyCeratopsian,

	"lambeosaurus":    FamilyHadrosaur,
	"parasaurolophus": FamilyHadrosaur,
	"iguanodon":       FamilyHadrosaur,
	"barsboldia":      FamilyHadrosaur,
	"camptosaurus":    FamilyHadrosaur,
	"corythosaurus":   FamilyHadrosaur,
	"edmontosaurus":   FamilyHadrosaur,
	"maiasaura":       FamilyHadrosaur,
	"olorotitan":      FamilyHadrosaur,
	"saurolophus":     FamilyHadrosaur,

	"anodontosaurus": FamilyAnkylosaur,
	"ankylosaurus":   FamilyAnkylosaur,
	"kentrosaurus":   FamilyAnkylosaur,
	"stegosaurus":    FamilyAnkylosaur,

	"amargasaurus": FamilySauropod,
	"deinocheirus": FamilySauropod,

	"therizinosaurus": FamilyTherizinosaur,
}

// FamilyOf resolves a species id to its family. Ids are matched
// case-insensitively; unknown ids map to FamilyGeneric.
func FamilyOf(id string) Family {
	if f, ok := speciesFamilies[strings.ToLower(id)]; ok {
		return f
	}
	return FamilyGeneric
}

// Family resolves the profile's own family.
func (s *Species) Family() Family { return FamilyOf(s.ID) }

// GroupSlots maps combat weight to a roster slot count. Heavier creatures
// occupy more of a fixed roster budget; lower slot counts allow bigger
// packs. Exposed for caller bookkeeping only, no effect on combat math.
func GroupSlots(cw int) int {
	switch {
	case cw >= 7000:
		return 5
	case cw >= 5000:
		return 4
	case cw >= 3000:
		return 3
	case cw >= 1500:
		return 2
	default:
		return 1
	}
}
