package sofse

// Station is a station record from the infrastructure endpoints. Identifiers
// arrive as strings even when numeric.
type Station struct {
	Nombre             string     `json:"nombre"`
	IDEstacion         string     `json:"id_estacion"`
	IDTramo            string     `json:"id_tramo"`
	Orden              string     `json:"orden"`
	IDReferencia       string     `json:"id_referencia"`
	Latitud            string     `json:"latitud"`
	Longitud           string     `json:"longitud"`
	ReferenciaOrden    string     `json:"referencia_orden"`
	Radio              string     `json:"radio"`
	AndenesHabilitados string     `json:"andenes_habilitados"`
	Visibilidad        Visibility `json:"visibilidad"`
	IncluidaEnRamales  []int      `json:"incluida_en_ramales"`
	OperativaEnRamales []int      `json:"operativa_en_ramales"`
}

// Visibility flags where a station is surfaced upstream.
type Visibility struct {
	Totem     int `json:"totem"`
	AppMobile int `json:"app_mobile"`
}

// Gerencia is the provider's grouping of branches into a line.
type Gerencia struct {
	ID        int     `json:"id"`
	IDEmpresa int     `json:"id_empresa"`
	Nombre    string  `json:"nombre"`
	Estado    Estado  `json:"estado"`
	Alerta    []Alert `json:"alerta"`
}

// Estado is the operational state attached to a gerencia. ID 1 means
// normal service.
type Estado struct {
	ID      int    `json:"id"`
	Mensaje string `json:"mensaje"`
	Color   string `json:"color"`
}

// Alert is a service alert attached to a gerencia or ramal.
type Alert struct {
	ID                    int     `json:"id"`
	LineaID               int     `json:"linea_id"`
	RamalID               *int    `json:"ramal_id"`
	EstacionID            *int    `json:"estacion_id"`
	Sentido               *string `json:"sentido"`
	CausaGTFS             string  `json:"causa_gtfs"`
	EfectoGTFS            string  `json:"efecto_gtfs"`
	Contenido             string  `json:"contenido"`
	Habilitado            int     `json:"habilitado"`
	VigenciaDesde         string  `json:"vigencia_desde"`
	VigenciaHasta         *string `json:"vigencia_hasta"`
	CriticidadOrden       int     `json:"criticidad_orden"`
	CriticidadColorFondo  string  `json:"criticidad_color_fondo"`
	CriticidadColorTexto  string  `json:"criticidad_color_texto"`
}

// Ramal is a branch of a line, with its own head-end stations and state.
type Ramal struct {
	ID               int      `json:"id"`
	IDEstacionInit   int      `json:"id_estacion_inicial"`
	IDEstacionFinal  int      `json:"id_estacion_final"`
	IDGerencia       int      `json:"id_gerencia"`
	Nombre           string   `json:"nombre"`
	Estaciones       int      `json:"estaciones"`
	Operativo        int      `json:"operativo"`
	EsElectrico      int      `json:"es_electrico"`
	TipoID           int      `json:"tipo_id"`
	Siglas           string   `json:"siglas"`
	Publico          bool     `json:"publico"`
	OrdenRamal       int      `json:"orden_ramal"`
	CabeceraInicial  Cabecera `json:"cabecera_inicial"`
	CabeceraFinal    Cabecera `json:"cabecera_final"`
	Alerta           []Alert  `json:"alerta"`
}

// Cabecera is a head-end station reference inside a ramal.
type Cabecera struct {
	ID          int    `json:"id"`
	Nombre      string `json:"nombre"`
	Siglas      string `json:"siglas"`
	NombreCorto string `json:"nombre_corto"`
}

// ArribosResponse is the arrivals payload for a station.
type ArribosResponse struct {
	Timestamp int64    `json:"timestamp"`
	Results   []Arribo `json:"results"`
	Total     int      `json:"total"`
}

// Arribo is a single predicted arrival. HoraLlegada carries only a wall-clock
// time; the date must be inferred by the caller.
type Arribo struct {
	ID             int     `json:"id"`
	RamalID        int     `json:"ramal_id"`
	RamalNombre    string  `json:"ramal_nombre"`
	Cabecera       string  `json:"cabecera"`
	Destino        string  `json:"destino"`
	EstacionID     int     `json:"estacion_id"`
	EstacionNombre string  `json:"estacion_nombre"`
	Anden          *string `json:"anden"`
	HoraLlegada    string  `json:"hora_llegada"`
	HoraSalida     string  `json:"hora_salida"`
	TiempoEstimado int     `json:"tiempo_estimado"`
	Estado         string  `json:"estado"`
	TrenID         *string `json:"tren_id"`
	FormacionID    *string `json:"formacion_id"`
	EnViaje        bool    `json:"en_viaje"`
}

// LineNameByGerencia maps gerencia IDs to metropolitan line names. 501
// (Regionales) is present so callers can recognize and skip it.
var LineNameByGerencia = map[int]string{
	1:   "Sarmiento",
	5:   "Mitre",
	11:  "Roca",
	21:  "Belgrano Sur",
	31:  "San Martín",
	41:  "Tren de la Costa",
	51:  "Belgrano Norte",
	501: "Regionales",
}

// GerenciaIDByLine is the reverse of LineNameByGerencia.
var GerenciaIDByLine = map[string]int{
	"Sarmiento":        1,
	"Mitre":            5,
	"Roca":             11,
	"Belgrano Sur":     21,
	"San Martín":       31,
	"Tren de la Costa": 41,
	"Belgrano Norte":   51,
	"Regionales":       501,
}
