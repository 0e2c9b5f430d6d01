package config

// Schema contracts: every entity in a configuration document has a
// declarative shape descriptor below. The descriptors are plain data;
// one generic walker in validator.go consumes them.

// FieldType enumerates the constraint kinds a field descriptor can
// carry.
type FieldType int

// Constraint kinds.
const (
	TypeString FieldType = iota
	TypeInt
	TypeBool
	TypeDuration
	TypeEnum
	TypeObject
	TypeList
	TypeMap
	TypeUnion
)

// Field describes the constraint on a single document field.
type Field struct {
	Required bool
	Type     FieldType

	// Enum is the closed value set for TypeEnum fields.
	Enum []string

	// Min and Max bound TypeInt fields inclusively. Both zero means
	// unbounded.
	Min int
	Max int

	// Fields describes the nested shape for TypeObject fields.
	Fields Shape

	// Elem describes the element constraint for TypeList and TypeMap
	// fields.
	Elem *Field

	// Alternatives are the allowed forms for TypeUnion fields; a value
	// is valid if it matches any one of them.
	Alternatives []Field
}

// Shape maps field names to their constraints. Fields present in a
// document but absent from the shape are ignored.
type Shape map[string]Field

// urlPatterns is the one-or-many URL pattern form shared by fragment
// render options and storefront pages.
var urlPatterns = Field{Required: true, Type: TypeUnion, Alternatives: []Field{
	{Type: TypeString},
	{Type: TypeList, Elem: &Field{Type: TypeString}},
}}

var portField = Field{Required: true, Type: TypeInt, Min: 1, Max: 65535}

var cacheShape = Shape{
	"duration": {Type: TypeDuration},
	"perUser":  {Type: TypeBool},
}

var endpointShape = Shape{
	"path":        {Required: true, Type: TypeString},
	"method":      {Required: true, Type: TypeEnum, Enum: []string{MethodGet, MethodPost}},
	"controller":  {Required: true, Type: TypeString},
	"middlewares": {Type: TypeList, Elem: &Field{Type: TypeString}},
	"cache":       {Type: TypeObject, Fields: cacheShape},
}

var apiVersionShape = Shape{
	"handler":   {Type: TypeString},
	"endpoints": {Required: true, Type: TypeList, Elem: &Field{Type: TypeObject, Fields: endpointShape}},
}

var apiShape = Shape{
	"name":        {Required: true, Type: TypeString},
	"testCookie":  {Required: true, Type: TypeString},
	"liveVersion": {Required: true, Type: TypeString},
	"versions":    {Required: true, Type: TypeMap, Elem: &Field{Type: TypeObject, Fields: apiVersionShape}},
}

var renderShape = Shape{
	"url":         urlPatterns,
	"static":      {Type: TypeBool},
	"selfReplace": {Type: TypeBool},
	"placeholder": {Type: TypeBool},
	"timeout":     {Type: TypeDuration},
	"middlewares": {Type: TypeList, Elem: &Field{Type: TypeString}},
	"routeCache":  {Type: TypeDuration},
}

var assetShape = Shape{
	"name":        {Required: true, Type: TypeString},
	"type":        {Required: true, Type: TypeEnum, Enum: []string{ResourceTypeCSS, ResourceTypeJS}},
	"injectType":  {Required: true, Type: TypeEnum, Enum: []string{InjectTypeInline, InjectTypeExternal}},
	"fileName":    {Required: true, Type: TypeString},
	"link":        {Type: TypeString},
	"location":    {Required: true, Type: TypeEnum, Enum: []string{LocationHead, LocationBodyStart, LocationBodyEnd, LocationContentStart, LocationContentEnd}},
	"executeType": {Type: TypeEnum, Enum: []string{ExecuteTypeSync, ExecuteTypeAsync, ExecuteTypeDefer}},
}

var dependencyShape = Shape{
	"name":       {Required: true, Type: TypeString},
	"type":       {Required: true, Type: TypeEnum, Enum: []string{ResourceTypeCSS, ResourceTypeJS}},
	"link":       {Type: TypeString},
	"preview":    {Type: TypeString},
	"injectType": {Type: TypeEnum, Enum: []string{InjectTypeInline, InjectTypeExternal}},
}

var fragmentVersionShape = Shape{
	"assets":       {Required: true, Type: TypeList, Elem: &Field{Type: TypeObject, Fields: assetShape}},
	"dependencies": {Required: true, Type: TypeList, Elem: &Field{Type: TypeObject, Fields: dependencyShape}},
	"handler":      {Type: TypeString},
}

var fragmentShape = Shape{
	"name":       {Required: true, Type: TypeString},
	"testCookie": {Required: true, Type: TypeString},
	"render":     {Required: true, Type: TypeObject, Fields: renderShape},
	"version":    {Required: true, Type: TypeString},
	"versions":   {Required: true, Type: TypeMap, Elem: &Field{Type: TypeObject, Fields: fragmentVersionShape}},
}

var tlsShape = Shape{
	"key":        {Required: true, Type: TypeString},
	"cert":       {Required: true, Type: TypeString},
	"passphrase": {Required: true, Type: TypeString},
	"protocols":  {Required: true, Type: TypeList, Elem: &Field{Type: TypeEnum, Enum: []string{ProtocolH2, ProtocolSpdy31, ProtocolHTTP11}}},
}

var gatewayShape = Shape{
	"kind":            {Required: true, Type: TypeEnum, Enum: []string{string(KindGateway)}},
	"name":            {Required: true, Type: TypeString},
	"url":             {Required: true, Type: TypeString},
	"port":            portField,
	"fragmentsFolder": {Required: true, Type: TypeString},
	"corsDomains":     {Type: TypeList, Elem: &Field{Type: TypeString}},
	"tls":             {Type: TypeObject, Fields: tlsShape},
	"api":             {Required: true, Type: TypeList, Elem: &Field{Type: TypeObject, Fields: apiShape}},
	"fragments":       {Required: true, Type: TypeList, Elem: &Field{Type: TypeObject, Fields: fragmentShape}},
}

var gatewayRefShape = Shape{
	"name":     {Required: true, Type: TypeString},
	"url":      {Required: true, Type: TypeString},
	"assetUrl": {Type: TypeString},
}

var pageShape = Shape{
	"html": {Required: true, Type: TypeString},
	"url":  urlPatterns,
}

var storefrontShape = Shape{
	"kind":         {Required: true, Type: TypeEnum, Enum: []string{string(KindStorefront)}},
	"port":         portField,
	"gateways":     {Required: true, Type: TypeList, Elem: &Field{Type: TypeObject, Fields: gatewayRefShape}},
	"pages":        {Required: true, Type: TypeList, Elem: &Field{Type: TypeObject, Fields: pageShape}},
	"pollInterval": {Type: TypeDuration},
	"dependencies": {Required: true, Type: TypeList, Elem: &Field{Type: TypeObject, Fields: dependencyShape}},
	"tls":          {Type: TypeObject, Fields: tlsShape},
}
