package svg

var containerTagMap = map[string]bool{
	"a":             true,
	"defs":          true,
	"g":             true,
	"marker":        true,
	"mask":          true,
	"missing-glyph": true,
	"pattern":       true,
	"svg":           true,
	"switch":        true,
	"symbol":        true,
}

var nonRenderingTagMap = map[string]bool{
	"clipPath":       true,
	"filter":         true,
	"linearGradient": true,
	"marker":         true,
	"mask":           true,
	"pattern":        true,
	"radialGradient": true,
	"solidColor":     true,
	"symbol":         true,
}

// text of these elements is rendered or interpreted, so whitespace is collapsed instead of removed
var textContentTagMap = map[string]bool{
	"desc":     true,
	"style":    true,
	"text":     true,
	"textPath": true,
	"title":    true,
	"tref":     true,
	"tspan":    true,
}

var colorAttrMap = map[string]bool{
	"fill":           true,
	"stroke":         true,
	"stop-color":     true,
	"flood-color":    true,
	"lighting-color": true,
}

var conditionalAttrMap = map[string]bool{
	"requiredExtensions": true,
	"requiredFeatures":   true,
	"systemLanguage":     true,
}

var editorNamespaceMap = map[string]bool{
	"http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd":     true,
	"http://inkscape.sourceforge.net/DTD/sodipodi-0.dtd":     true,
	"http://www.inkscape.org/namespaces/inkscape":            true,
	"http://www.bohemiancoding.com/sketch/ns":                true,
	"http://ns.adobe.com/AdobeIllustrator/10.0/":             true,
	"http://ns.adobe.com/Graphs/1.0/":                        true,
	"http://ns.adobe.com/AdobeSVGViewerExtensions/3.0/":      true,
	"http://ns.adobe.com/Variables/1.0/":                     true,
	"http://ns.adobe.com/SaveForWeb/1.0/":                    true,
	"http://ns.adobe.com/Extensibility/1.0/":                 true,
	"http://ns.adobe.com/Flows/1.0/":                         true,
	"http://ns.adobe.com/ImageReplacement/1.0/":              true,
	"http://ns.adobe.com/GenericCustomNamespace/1.0/":        true,
	"http://ns.adobe.com/XPath/1.0/":                         true,
	"http://schemas.microsoft.com/visio/2003/SVGExtensions/": true,
	"http://taptrix.com/vectorillustrator/svg_extensions":    true,
	"http://www.figma.com/figma/ns":                          true,
	"http://purl.org/dc/elements/1.1/":                       true,
	"http://creativecommons.org/ns#":                         true,
	"http://www.w3.org/1999/02/22-rdf-syntax-ns#":            true,
	"http://www.serif.com/":                                  true,
	"http://www.vector.evaxdesign.sk":                        true,
}

// color keywords to hexadecimal, only the ones commonly found in exported files
var colorNames = map[string]string{
	"aqua":    "#00ffff",
	"black":   "#000000",
	"blue":    "#0000ff",
	"fuchsia": "#ff00ff",
	"gray":    "#808080",
	"green":   "#008000",
	"grey":    "#808080",
	"lime":    "#00ff00",
	"maroon":  "#800000",
	"navy":    "#000080",
	"olive":   "#808000",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"red":     "#ff0000",
	"silver":  "#c0c0c0",
	"teal":    "#008080",
	"white":   "#ffffff",
	"yellow":  "#ffff00",
}

// hexadecimal colors that have a shorter keyword
var shortColorNames = map[string]string{
	"#f0ffff": "azure",
	"#f5f5dc": "beige",
	"#ffe4c4": "bisque",
	"#a52a2a": "brown",
	"#ff7f50": "coral",
	"#ffd700": "gold",
	"#808080": "gray",
	"#008000": "green",
	"#4b0082": "indigo",
	"#fffff0": "ivory",
	"#f0e68c": "khaki",
	"#faf0e6": "linen",
	"#800000": "maroon",
	"#000080": "navy",
	"#808000": "olive",
	"#ffa500": "orange",
	"#da70d6": "orchid",
	"#cd853f": "peru",
	"#ffc0cb": "pink",
	"#dda0dd": "plum",
	"#800080": "purple",
	"#f00":    "red",
	"#fa8072": "salmon",
	"#a0522d": "sienna",
	"#c0c0c0": "silver",
	"#fffafa": "snow",
	"#d2b48c": "tan",
	"#008080": "teal",
	"#ff6347": "tomato",
	"#ee82ee": "violet",
	"#f5deb3": "wheat",
}
