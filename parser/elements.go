package parser

// Element tag names used across a register-description document. Grouped
// the way the schema groups them: the document root and category tree,
// then one constant per node variant, then the shared sub-elements each
// variant's builder pulls values out of.
const (
	tagRegisterDescription = "RegisterDescription"
	tagCategory             = "Category"
	tagInteger              = "Integer"
	tagFloat                = "Float"
	tagBoolean              = "Boolean"
	tagString               = "String"
	tagStringReg            = "StringReg"
	tagEnumeration          = "Enumeration"
	tagEnumEntry            = "EnumEntry"
	tagCommand              = "Command"
	tagRegister             = "Register"
	tagIntReg               = "IntReg"
	tagMaskedIntReg         = "MaskedIntReg"
	tagFloatReg             = "FloatReg"
	tagStructReg            = "StructReg"
	tagStructEntry          = "StructEntry"
	tagConverter            = "Converter"
	tagIntConverter         = "IntConverter"
	tagSwissKnife           = "SwissKnife"
	tagIntSwissKnife        = "IntSwissKnife"
	tagPort                 = "Port"
)

// Shared sub-elements and attributes every builder may consult.
const (
	elemToolTip            = "ToolTip"
	elemDescription         = "Description"
	elemDisplayName         = "DisplayName"
	elemVisibility          = "Visibility"
	elemDocuURL             = "DocuURL"
	elemIsDeprecated        = "IsDeprecated"
	elemEventID             = "EventID"
	elemImposedAccessMode   = "ImposedAccessMode"
	elemPIsImplemented      = "pIsImplemented"
	elemPIsAvailable        = "pIsAvailable"
	elemPIsLocked           = "pIsLocked"
	elemPBlockPolling       = "pBlockPolling"
	elemPError              = "pError"
	elemPAlias              = "pAlias"
	elemPCastAlias          = "pCastAlias"
	elemPValue              = "pValue"
	elemValue               = "Value"
	elemMin                 = "Min"
	elemMax                 = "Max"
	elemInc                 = "Inc"
	elemUnit                = "Unit"
	elemRepresentation      = "Representation"
	elemCommandValue        = "pCommandValue"
	elemAddress             = "Address"
	elemPAddress            = "pAddress"
	elemLength              = "Length"
	elemPLength             = "pLength"
	elemAccessMode          = "AccessMode"
	elemCachable            = "Cachable"
	elemPollingTime         = "PollingTime"
	elemStreamable          = "Streamable"
	elemPInvalidator        = "pInvalidator"
	elemPort                = "pPort"
	elemSign                = "Sign"
	elemEndianness          = "Endianess" // GenICam's schema spells it this way
	elemBit                 = "Bit"
	elemLSB                 = "LSB"
	elemMSB                 = "MSB"
	elemMaxLength           = "MaxLength"
	elemOnValue             = "OnValue"
	elemSymbol              = "Symbol"
	elemPVariable           = "pVariable"
	elemFormulaFrom         = "FormulaFrom"
	elemFormulaTo           = "FormulaTo"
	elemFormula             = "Formula"
	elemDeviceName          = "DeviceName"

	attrName      = "Name"
	attrNameSpace = "NameSpace"
)
