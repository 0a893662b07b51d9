// internal/webhook/schema.go
package webhook

import "brand-intake/internal/common/validation"

// responseSchema lists the fields the scoring flow must return. Mission,
// vision and the explanatory texts may be absent.
const responseSchema = `{
  "type": "object",
  "required": ["output"],
  "properties": {
    "output": {
      "type": "object",
      "required": [
        "brandScore", "brandAwareness", "brandConsistency", "brandEngagement",
        "brandTagline", "typography", "colorPalette", "actionableInsights"
      ],
      "properties": {
        "brandScore":       {"$ref": "#/definitions/percentage"},
        "brandAwareness":   {"$ref": "#/definitions/percentage"},
        "brandConsistency": {"$ref": "#/definitions/percentage"},
        "brandEngagement":  {"$ref": "#/definitions/percentage"},
        "brandMission": {"type": "string"},
        "brandVision":  {"type": "string"},
        "brandTagline": {
          "type": "object",
          "required": ["tagline"],
          "properties": {"tagline": {"type": "string"}}
        },
        "typography": {
          "type": "object",
          "required": ["fontName"],
          "properties": {"fontName": {"type": "string"}}
        },
        "colorPalette": {
          "type": "object",
          "required": ["primary", "secondary", "accent", "background", "text"],
          "properties": {
            "primary":    {"type": "string"},
            "secondary":  {"type": "string"},
            "accent":     {"type": "string"},
            "background": {"type": "string"},
            "text":       {"type": "string"}
          }
        },
        "actionableInsights": {"type": "array", "items": {"type": "string"}},
        "insightSummaryAudit":     {"type": "string"},
        "summaryOfFindingsAudit":  {"type": "string"},
        "taglineExplanation":      {"type": "string"},
        "typographyExplanation":   {"type": "string"},
        "colorPaletteExplanation": {"type": "string"}
      }
    }
  },
  "definitions": {
    "percentage": {
      "type": "string",
      "pattern": "^\\s*[0-9]+(\\.[0-9]+)?\\s*%?\\s*$"
    }
  }
}`

var outputSchema = validation.MustCompile(responseSchema)
