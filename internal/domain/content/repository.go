package content

import "context"

// Key es la clave fija del único documento de contenido del sitio.
// El sistema soporta exactamente un documento editable, no es un CMS.
const Key = "main"

// Document es el contenido editable del sitio: secciones anidadas
// (home/about/process/contact). El storage lo trata como JSON opaco.
type Document = map[string]any

type Repository interface {
	// Get devuelve el documento bajo la clave fija, u objeto vacío
	// si nunca se escribió.
	Get(ctx context.Context) (Document, error)
	// Replace hace upsert del documento completo bajo la clave fija.
	Replace(ctx context.Context, doc Document) error
}
