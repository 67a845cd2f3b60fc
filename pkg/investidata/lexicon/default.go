package lexicon

import "github.com/ukaji3/investidata-go/pkg/investidata/models"

// Default returns the built-in keyword tables for Spanish and English
// UFED-style exports. Each call returns a fresh copy.
func Default() Tables {
	return Tables{
		Sheets: SheetTable{
			models.CategoryDevice:    {"resumen", "summary", "device", "dispositivo", "info"},
			models.CategoryAccounts:  {"cuenta", "account", "perfil", "usuario", "profile"},
			models.CategoryMessages:  {"message", "mensaje", "sms", "chat", "whatsapp", "im", "comunic", "communications"},
			models.CategoryContacts:  {"contact", "contacto", "agenda", "phonebook"},
			models.CategoryLocations: {"gps", "location", "ubicac", "coordenada", "map"},
			models.CategoryApps:      {"app", "aplicac", "installed", "application", "apk"},
			models.CategoryCalls:     {"llamada", "call", "registro de llamadas"},
			models.CategoryWeb:       {"web", "browser", "navegador", "historial", "bookmark", "marcador"},
		},
		Columns: map[models.Category]RoleTable{
			models.CategoryMessages: {
				models.RoleDate: dateKeywords(),
				models.RoleBody: {"body", "mensaje", "text", "content", "contenido"},
				models.RoleFrom: {"remitente", "sender", "from", "de"},
				models.RoleTo:   {"destinatario", "receiver", "para", "to"},
			},
			models.CategoryCalls: {
				models.RoleDate:   dateKeywords(),
				models.RoleFrom:   {"origen", "caller", "from", "de"},
				models.RoleTo:     {"destino", "callee", "para", "to"},
				models.RoleNumber: {"number", "número", "numero", "phone", "teléfono", "telefono"},
			},
			models.CategoryContacts: {
				models.RoleName:   {"name", "nombre", "contact", "contacto"},
				models.RoleNumber: {"number", "número", "numero", "phone", "teléfono", "telefono", "tel"},
			},
			models.CategoryLocations: {
				models.RoleDate: dateKeywords(),
				models.RoleLat:  {"latitude", "latitud", "lat"},
				models.RoleLon:  {"longitude", "longitud", "lon", "lng"},
			},
			models.CategoryDevice: {
				models.RoleIMEI:  {"imei"},
				models.RoleBrand: {"brand", "marca", "fabricante"},
				models.RoleModel: {"model", "modelo", "device"},
				models.RoleUser:  {"user", "usuario", "owner", "nombre"},
			},
			models.CategoryApps: {
				models.RoleName: {"name", "nombre", "app"},
				models.RolePath: {"package", "apk", "path", "ruta", "archivo"},
			},
			models.CategoryAccounts: {
				models.RoleName: {"account", "cuenta", "name", "nombre"},
				models.RoleUser: {"user", "usuario", "username"},
			},
			models.CategoryWeb: {
				models.RoleDate: dateKeywords(),
				models.RoleName: {"title", "título", "titulo"},
				models.RolePath: {"url", "dirección", "direccion", "link"},
			},
		},
		Alerts: Lexicon{
			"Drogas/Sustancias": {"droga", "cocaína", "marihuana", "pasto", "blanca", "cristal", "tusi", "pepa", "keta", "gramo"},
			"Armas/Violencia":   {"arma", "pistola", "fierro", "bala", "munición", "calibre", "cañón", "muerto", "matar", "plomo"},
			"Delitos Graves":    {"secuestro", "extorsión", "plata", "pago", "rescate", "vuelta"},
		},
		SuspiciousApps: []string{"vpn", "proxy", "hack", "spy", "tor", "dark", "sniff", "keylogger"},
		AppTextColumns: []string{"name", "apk", "archivo", "ruta", "path", "package"},
		Stopwords: []string{
			"que", "los", "las", "por", "con", "para", "una", "del", "pero", "como",
			"mas", "más", "ya", "eso", "esa", "este", "esta", "hay", "muy", "sus",
			"the", "and", "you", "for", "that", "with", "this", "are", "but", "not",
		},
		// Day first throughout; "2" and "1" also accept two digits.
		DateLayouts: []string{
			"2/1/2006 15:04:05",
			"2/1/2006 15:04",
			"2/1/2006",
			"2-1-2006 15:04:05",
			"2-1-2006 15:04",
			"2-1-2006",
			"2/1/06 15:04:05",
			"2/1/06 15:04",
			"2/1/06",
			"2006-01-02 15:04:05",
			"2006-01-02T15:04:05",
			"2006-01-02",
		},
	}
}

func dateKeywords() []string {
	return []string{"date", "fecha", "time", "hora", "timestamp"}
}
