package subte

import "github.com/baires-transit/batransit/utils"

// Station is one entry of the static Subte directory. Aliases cover common
// alternate spellings and accent-free forms.
type Station struct {
	ID      string
	Name    string
	Line    string
	Aliases []string
}

// Lines enumerates the Subte lines, Premetro included.
var Lines = []string{"A", "B", "C", "D", "E", "H", "Premetro"}

// Stations is the full directory. Read-only after load.
var Stations = []Station{
	// Line A (18 stations): Plaza de Mayo - San Pedrito
	{ID: "plaza-de-mayo-a", Name: "Plaza de Mayo", Line: "A"},
	{ID: "peru", Name: "Perú", Line: "A"},
	{ID: "piedras", Name: "Piedras", Line: "A"},
	{ID: "lima", Name: "Lima", Line: "A"},
	{ID: "saenz-pena", Name: "Sáenz Peña", Line: "A", Aliases: []string{"Saenz Peña"}},
	{ID: "congreso", Name: "Congreso", Line: "A"},
	{ID: "pasco-a", Name: "Pasco", Line: "A"},
	{ID: "alberti", Name: "Alberti", Line: "A"},
	{ID: "plaza-miserere", Name: "Plaza Miserere", Line: "A", Aliases: []string{"Once", "Miserere"}},
	{ID: "loria", Name: "Loria", Line: "A"},
	{ID: "castro-barros", Name: "Castro Barros", Line: "A"},
	{ID: "rio-de-janeiro-a", Name: "Río de Janeiro", Line: "A", Aliases: []string{"Rio de Janeiro"}},
	{ID: "acoyte", Name: "Acoyte", Line: "A"},
	{ID: "primera-junta", Name: "Primera Junta", Line: "A"},
	{ID: "puan", Name: "Puan", Line: "A"},
	{ID: "carabobo-a", Name: "Carabobo", Line: "A"},
	{ID: "flores", Name: "Flores", Line: "A"},
	{ID: "san-pedrito", Name: "San Pedrito", Line: "A"},

	// Line B (17 stations): Leandro N. Alem - Juan Manuel de Rosas
	{ID: "leandro-n-alem", Name: "Leandro N. Alem", Line: "B", Aliases: []string{"L.N. Alem", "Alem"}},
	{ID: "florida", Name: "Florida", Line: "B"},
	{ID: "carlos-pellegrini", Name: "Carlos Pellegrini", Line: "B", Aliases: []string{"Pellegrini"}},
	{ID: "uruguay", Name: "Uruguay", Line: "B"},
	{ID: "callao-b", Name: "Callao", Line: "B"},
	{ID: "pasteur", Name: "Pasteur", Line: "B"},
	{ID: "pueyrredon-b", Name: "Pueyrredón", Line: "B", Aliases: []string{"Pueyrredon"}},
	{ID: "carlos-gardel", Name: "Carlos Gardel", Line: "B", Aliases: []string{"Gardel"}},
	{ID: "medrano", Name: "Medrano", Line: "B"},
	{ID: "angel-gallardo", Name: "Ángel Gallardo", Line: "B", Aliases: []string{"Angel Gallardo"}},
	{ID: "malabia", Name: "Malabia", Line: "B"},
	{ID: "dorrego", Name: "Dorrego", Line: "B"},
	{ID: "federico-lacroze", Name: "Federico Lacroze", Line: "B", Aliases: []string{"Lacroze"}},
	{ID: "tronador", Name: "Tronador", Line: "B"},
	{ID: "los-incas", Name: "Los Incas - Parque Chas", Line: "B", Aliases: []string{"Los Incas", "Parque Chas"}},
	{ID: "echeverria", Name: "Echeverría", Line: "B", Aliases: []string{"Echeverria"}},
	{ID: "juan-manuel-de-rosas", Name: "Juan Manuel de Rosas", Line: "B", Aliases: []string{"J.M. de Rosas", "Rosas"}},

	// Line C (9 stations): Retiro - Constitución
	{ID: "retiro-c", Name: "Retiro", Line: "C"},
	{ID: "general-san-martin", Name: "General San Martín", Line: "C", Aliases: []string{"San Martin", "San Martín"}},
	{ID: "lavalle", Name: "Lavalle", Line: "C"},
	{ID: "diagonal-norte", Name: "Diagonal Norte", Line: "C"},
	{ID: "avenida-de-mayo", Name: "Avenida de Mayo", Line: "C", Aliases: []string{"Av. de Mayo"}},
	{ID: "moreno", Name: "Moreno", Line: "C"},
	{ID: "independencia-c", Name: "Independencia", Line: "C"},
	{ID: "san-juan", Name: "San Juan", Line: "C"},
	{ID: "constitucion-c", Name: "Constitución", Line: "C", Aliases: []string{"Constitucion"}},

	// Line D (16 stations): Catedral - Congreso de Tucumán
	{ID: "catedral", Name: "Catedral", Line: "D"},
	{ID: "9-de-julio", Name: "9 de Julio", Line: "D", Aliases: []string{"Nueve de Julio"}},
	{ID: "tribunales", Name: "Tribunales", Line: "D"},
	{ID: "callao-d", Name: "Callao", Line: "D"},
	{ID: "facultad-de-medicina", Name: "Facultad de Medicina", Line: "D", Aliases: []string{"Medicina"}},
	{ID: "pueyrredon-d", Name: "Pueyrredón", Line: "D", Aliases: []string{"Pueyrredon"}},
	{ID: "aguero", Name: "Agüero", Line: "D", Aliases: []string{"Aguero"}},
	{ID: "bulnes", Name: "Bulnes", Line: "D"},
	{ID: "scalabrini-ortiz", Name: "Scalabrini Ortiz", Line: "D"},
	{ID: "plaza-italia", Name: "Plaza Italia", Line: "D"},
	{ID: "palermo", Name: "Palermo", Line: "D"},
	{ID: "ministro-carranza", Name: "Ministro Carranza", Line: "D", Aliases: []string{"Carranza"}},
	{ID: "olleros", Name: "Olleros", Line: "D"},
	{ID: "jose-hernandez", Name: "José Hernández", Line: "D", Aliases: []string{"Jose Hernandez"}},
	{ID: "juramento", Name: "Juramento", Line: "D"},
	{ID: "congreso-de-tucuman", Name: "Congreso de Tucumán", Line: "D", Aliases: []string{"Congreso de Tucuman"}},

	// Line E (18 stations): Bolívar - Plaza de los Virreyes (+ Retiro extension)
	{ID: "retiro-e", Name: "Retiro", Line: "E"},
	{ID: "catalinas", Name: "Catalinas", Line: "E"},
	{ID: "correo-central", Name: "Correo Central", Line: "E"},
	{ID: "bolivar", Name: "Bolívar", Line: "E", Aliases: []string{"Bolivar"}},
	{ID: "belgrano", Name: "Belgrano", Line: "E"},
	{ID: "independencia-e", Name: "Independencia", Line: "E"},
	{ID: "san-jose", Name: "San José", Line: "E", Aliases: []string{"San Jose"}},
	{ID: "entre-rios", Name: "Entre Ríos", Line: "E", Aliases: []string{"Entre Rios", "Rodolfo Walsh"}},
	{ID: "pichincha", Name: "Pichincha", Line: "E"},
	{ID: "jujuy", Name: "Jujuy", Line: "E"},
	{ID: "general-urquiza", Name: "General Urquiza", Line: "E", Aliases: []string{"Urquiza"}},
	{ID: "boedo", Name: "Boedo", Line: "E"},
	{ID: "avenida-la-plata", Name: "Avenida La Plata", Line: "E", Aliases: []string{"Av. La Plata"}},
	{ID: "jose-maria-moreno", Name: "José María Moreno", Line: "E", Aliases: []string{"Jose Maria Moreno"}},
	{ID: "emilio-mitre", Name: "Emilio Mitre", Line: "E"},
	{ID: "medalla-milagrosa", Name: "Medalla Milagrosa", Line: "E"},
	{ID: "varela", Name: "Varela", Line: "E"},
	{ID: "plaza-de-los-virreyes", Name: "Plaza de los Virreyes", Line: "E", Aliases: []string{"Virreyes"}},

	// Line H (12 stations): Las Heras - Hospitales
	{ID: "facultad-de-derecho", Name: "Facultad de Derecho", Line: "H", Aliases: []string{"Derecho", "Julieta Lanteri"}},
	{ID: "las-heras", Name: "Las Heras", Line: "H"},
	{ID: "santa-fe", Name: "Santa Fe", Line: "H"},
	{ID: "cordoba-h", Name: "Córdoba", Line: "H", Aliases: []string{"Cordoba"}},
	{ID: "corrientes-h", Name: "Corrientes", Line: "H"},
	{ID: "once-h", Name: "Once", Line: "H", Aliases: []string{"Once - 30 de Diciembre"}},
	{ID: "venezuela", Name: "Venezuela", Line: "H"},
	{ID: "humberto-i", Name: "Humberto I", Line: "H", Aliases: []string{"Humberto 1"}},
	{ID: "inclan", Name: "Inclán", Line: "H", Aliases: []string{"Inclan"}},
	{ID: "caseros", Name: "Caseros", Line: "H"},
	{ID: "parque-patricios", Name: "Parque Patricios", Line: "H"},
	{ID: "hospitales", Name: "Hospitales", Line: "H"},

	// Premetro (17 stations): Intendente Saguier - Centro Cívico
	{ID: "intendente-saguier", Name: "Intendente Saguier", Line: "Premetro"},
	{ID: "centro-civico", Name: "Centro Cívico", Line: "Premetro", Aliases: []string{"Centro Civico"}},
	{ID: "general-savio", Name: "General Savio", Line: "Premetro"},
	{ID: "gabino-ezeiza", Name: "Gabino Ezeiza", Line: "Premetro"},
	{ID: "nicolas-descalzi", Name: "Nicolás Descalzi", Line: "Premetro", Aliases: []string{"Nicolas Descalzi"}},
	{ID: "larrazabal", Name: "Larrazábal", Line: "Premetro", Aliases: []string{"Larrazabal"}},
	{ID: "murature", Name: "Murature", Line: "Premetro"},
	{ID: "mariano-acosta", Name: "Mariano Acosta", Line: "Premetro"},
	{ID: "timoteo-gordillo", Name: "Timoteo Gordillo", Line: "Premetro"},
	{ID: "juan-de-garay", Name: "Juan de Garay", Line: "Premetro"},
	{ID: "somellera", Name: "Somellera", Line: "Premetro"},
	{ID: "castanares", Name: "Castañares", Line: "Premetro", Aliases: []string{"Castanares"}},
	{ID: "florentino-ameghino", Name: "Florentino Ameghino", Line: "Premetro"},
	{ID: "cildanez", Name: "Cildáñez", Line: "Premetro", Aliases: []string{"Cildanez"}},
	{ID: "escalada", Name: "Escalada", Line: "Premetro"},
	{ID: "portela", Name: "Portela", Line: "Premetro"},
	{ID: "olympo", Name: "Olympo", Line: "Premetro"},
}

// normalizedKeys holds the precomputed normalized name and aliases per
// directory entry, index-aligned with Stations.
type normalizedKey struct {
	name    string
	aliases []string
}

var normalizedKeys = func() []normalizedKey {
	keys := make([]normalizedKey, len(Stations))
	for i, s := range Stations {
		keys[i].name = utils.NormalizeStation(s.Name)
		for _, alias := range s.Aliases {
			keys[i].aliases = append(keys[i].aliases, utils.NormalizeStation(alias))
		}
	}
	return keys
}()

// StationsForLine returns the directory entries of a single line.
func StationsForLine(line string) []Station {
	var out []Station
	for _, s := range Stations {
		if s.Line == line {
			out = append(out, s)
		}
	}
	return out
}
