package config

// ConfigFileName is the project file looked up by the CLI
const ConfigFileName = "bytegen.yaml"

// IsTestMode indicates if the program is running under go test.
// This is set once at startup in main.go.
var IsTestMode = false

// IsDebugMode enables request logging in the CLI
var IsDebugMode = false

// DefaultJavaVersion is the target when no version is configured
const DefaultJavaVersion = "1.8"

// Well-known internal names
const (
	ObjectInternalName       = "java/lang/Object"
	StringInternalName       = "java/lang/String"
	ClassInternalName        = "java/lang/Class"
	NumberInternalName       = "java/lang/Number"
	CloneableInternalName    = "java/lang/Cloneable"
	SerializableInternalName = "java/io/Serializable"
	ComparableInternalName   = "java/lang/Comparable"
	VoidInternalName         = "java/lang/Void"
)

// Wrapper internal names
const (
	BooleanInternalName   = "java/lang/Boolean"
	ByteInternalName      = "java/lang/Byte"
	ShortInternalName     = "java/lang/Short"
	CharacterInternalName = "java/lang/Character"
	IntegerInternalName   = "java/lang/Integer"
	LongInternalName      = "java/lang/Long"
	FloatInternalName     = "java/lang/Float"
	DoubleInternalName    = "java/lang/Double"
)

// Member names used by emitted code
const (
	ConstructorName      = "<init>"
	TypeInitializerName  = "<clinit>"
	ValueOfMethodName    = "valueOf"
	ForNameMethodName    = "forName"
	ForNameDescriptor    = "(Ljava/lang/String;)Ljava/lang/Class;"
	PrimitiveTypeField   = "TYPE"
	ClassDescriptor      = "Ljava/lang/Class;"
	CachedValuePrefix    = "cachedValue$"
	ArraySymbolSuffix    = "[]"
	WildcardSymbol       = "?"
	ExtendsSymbol        = "extends"
	SuperSymbol          = "super"
	BoundSeparator       = " & "
	ParameterSeparator   = ", "
	GeneratedMessageName = "com.google.protobuf.GeneratedMessageV3"
)
