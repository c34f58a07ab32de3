package common

const (
	SrcFileExtension = ".abdo"
	ConfigFileName   = "abdo.toml"
	CompilerVersion  = "0.1.0"
)

// Default addressing used by the symbol table builder.
const (
	DefaultBaseAddress = 100
	DefaultAddressStep = 1
)

// AddressPrefix is prepended to every rendered symbol address.
const AddressPrefix = "0x00"
