package project

import "strings"

// Cuenca is a drainage basin the works are filed under. Every cuenca
// maps to one list on the project board; ListName must match the
// remote list's name exactly.
type Cuenca struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"` // 3-letter project code prefix
	ListName string `json:"list_name"`
}

var Cuencas = []Cuenca{
	{ID: "mar", Name: "Cuenca Matanza-Riachuelo", Code: "MAR", ListName: "Cuenca Matanza-Riachuelo"},
	{ID: "rrq", Name: "Cuenca Río Reconquista", Code: "RRQ", ListName: "Cuenca Río Reconquista"},
	{ID: "rlu", Name: "Cuenca Luján", Code: "RLU", ListName: "Cuenca Luján"},
	{ID: "rsa", Name: "Cuenca del Río Salado", Code: "RSA", ListName: "Cuenca del Río Salado"},
	{ID: "arr", Name: "Cuenca Rio Arrecifes", Code: "ARR", ListName: "Cuenca Rio Arrecifes"},
	{ID: "vae", Name: "Vertiente Atlántica Este", Code: "VAE", ListName: "Vertiente Atlántica Este"},
	{ID: "rpm", Name: "Vertiente Río de la Plata Intermedia", Code: "RPM", ListName: "Vertiente Río de la Plata Intermedia"},
	{ID: "rps", Name: "Vertiente Río de la Plata Superior", Code: "RPS", ListName: "Vertiente Río de la Plata Superior"},
	{ID: "rar", Name: "Cuenca Río Areco", Code: "RAR", ListName: "Cuenca Río Areco"},
	{ID: "cm", Name: "Canales de Marea", Code: "CM", ListName: "Canales de Marea"},
	{ID: "rco", Name: "Cuenca Río Colorado", Code: "RCO", ListName: "Cuenca Río Colorado"},
	{ID: "vas", Name: "Vertiente Atlantica Sur", Code: "VAS", ListName: "Vertiente Atlantica Sur"},
	{ID: "crz", Name: "Cuenca Arroyo de la Cruz", Code: "CRZ", ListName: "Cuenca Arroyo de la Cruz"},
	{ID: "qqg", Name: "Cuenca Quequén Grande", Code: "QQG", ListName: "Cuenca Quequén Grande"},
	{ID: "sn", Name: "Cuenca S/N", Code: "SN", ListName: "Cuenca S/N"},
	{ID: "rng", Name: "Cuenca de Río Negro", Code: "RNG", ListName: "Cuenca de Río Negro"},
	{ID: "rpi", Name: "Vertiente Río de La Plata Inferior", Code: "RPI", ListName: "Vertiente Río de La Plata Inferior"},
}

// CuencaByID looks up a cuenca by its short id.
func CuencaByID(id string) (Cuenca, bool) {
	for _, c := range Cuencas {
		if strings.EqualFold(c.ID, id) {
			return c, true
		}
	}
	return Cuenca{}, false
}

// DescriptionTemplate is the prefilled description for new project
// cards; the team fills the blanks in afterwards.
const DescriptionTemplate = `PARTIDO:
EXTENSIÓN (Ha o Km):
POBLACIÓN BENEFICIADA:
PRESUPUESTO:
FINANCIAMIENTO:

EQUIPO DE TRABAJO EIAS

Diagnóstico ambiental-socioeconómico:

Información SIG-imágenes:

Información LIDAR/vuelos Dron:

PROYECTISTA: Proyectista
EXPEDIENTE:
PROVIDENCIA:
FECHA:
Otro drive de trabajo:
Drive del proyectista: `
