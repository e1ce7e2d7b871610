package ai

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/francuello10/tec-ecommerce-suite/internal/enrichment"
)

// INPUTS_PLACEHOLDER is replaced by the product facts in a prompt template
const INPUTS_PLACEHOLDER = "{inputs}"

// DefaultPrompt is the master prompt used when no custom template is configured
const DefaultPrompt = `Actúas como un Ingeniero de Hardware y Senior Product Manager de e-commerce de tecnología en Argentina.
Tu objetivo es analizar la información técnica cruda de un producto IT y devolver ÚNICAMENTE un objeto JSON válido. NO uses bloques de código Markdown ni texto introductorio.

El JSON debe respetar esta estructura:
{
  "seo_name": "Nombre comercial optimizado para SEO",
  "marketing_html": "<p>Descripción persuasiva en español argentino, enfocada en los beneficios B2C/B2B. Mínimo 2 párrafos. Usa etiquetas HTML básicas como <b> y <br>.</p>",
  "technical_html": "<table>...</table> (Tabla HTML limpia con las especificaciones. Opcional si no hay datos técnicos estructurados)",
  "attributes": {
    "Clave Dinámica 1": "Valor Específico 1",
    "Clave Dinámica 2": "Valor Específico 2"
  }
}

REGLAS ESTRICTAS PARA LA EXTRACCIÓN DE ATRIBUTOS TÉCNICOS:
1. Tienes total libertad para crear las claves del objeto "attributes" que consideres vitales para ese producto (Ej: "Tipo de Panel", "Frecuencia de Actualización", "Generación de Procesador", "Factor de Forma").
2. Para RAM especifica tecnología y velocidad (Ej: "16GB DDR5 4800MHz"). Para almacenamiento distingue la interfaz (Ej: "1TB M.2 NVMe PCIe 4.0").
3. En pantallas incluye tecnología del panel, resolución y tasa de refresco si aplica.
4. Mantén los valores concisos para búsqueda facetada, pero completos.
5. No incluyas marca, SKU, número de parte ni precio como atributos.
6. Extrae entre 5 y 12 atributos. Si un dato vital no está, OMÍTELO. No inventes.

Insumos: {inputs}`

var plainText = bluemonday.StrictPolicy()

// BuildPrompt renders the template with the product facts enabled by the request's inputs.
// A template without the placeholder gets the facts appended.
func BuildPrompt(req enrichment.ContentRequest) string {
	template := req.Template
	if strings.TrimSpace(template) == "" {
		template = DefaultPrompt
	}

	inputs := Inputs(req)
	if strings.Contains(template, INPUTS_PLACEHOLDER) {
		return strings.ReplaceAll(template, INPUTS_PLACEHOLDER, inputs)
	}
	return template + "\n\nInsumos: " + inputs
}

// Inputs renders the enabled product facts, one per line
func Inputs(req enrichment.ContentRequest) string {
	var lines []string
	id := req.Identity

	if req.Inputs.Brand && id.Brand != "" {
		lines = append(lines, fmt.Sprintf("Marca: %s", id.Brand))
	}
	if req.Inputs.Name && id.Name != "" {
		lines = append(lines, fmt.Sprintf("Nombre Original: %s", id.Name))
	}
	if id.PartNumber != "" {
		lines = append(lines, fmt.Sprintf("Número de Parte: %s", id.PartNumber))
	}
	if req.Inputs.Description {
		if text := stripHTML(req.Description); text != "" {
			lines = append(lines, fmt.Sprintf("Descripción: %s", text))
		}
	}
	if req.Inputs.Specs && len(req.Specs) > 0 {
		specs := make([]string, 0, len(req.Specs))
		for _, spec := range req.Specs {
			specs = append(specs, fmt.Sprintf("- %s: %s", spec.Name, spec.Value))
		}
		lines = append(lines, "Especificaciones Técnicas:\n"+strings.Join(specs, "\n"))
	}
	if req.Inputs.Category && id.Category != "" {
		lines = append(lines, fmt.Sprintf("Categorías: %s", id.Category))
	}

	return strings.Join(lines, "\n")
}

func stripHTML(s string) string {
	text := html.UnescapeString(plainText.Sanitize(s))
	return strings.Join(strings.Fields(text), " ")
}
