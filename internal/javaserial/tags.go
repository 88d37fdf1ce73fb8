package javaserial

// tag identifies the kind of content the next stream item decodes to.
type tag uint8

const (
	tagNull tag = iota
	tagReference
	tagClassDesc
	tagObject
	tagString
	tagArray
	tagClass
	tagBlockData
	tagEndBlockData
	tagReset
	tagBlockDataLong
	tagException
	tagLongString
	tagProxyClassDesc
	tagEnum
	tagCount
)

// tagBase is subtracted from the raw stream byte to get a tag index.
const tagBase = 0x70

// baseHandle is the handle value assigned to the first referenceable value
// in a stream.
const baseHandle = 0x007E0000

var tagNames = [tagCount]string{
	tagNull:           "Null",
	tagReference:      "Reference",
	tagClassDesc:      "ClassDesc",
	tagObject:         "Object",
	tagString:         "String",
	tagArray:          "Array",
	tagClass:          "Class",
	tagBlockData:      "BlockData",
	tagEndBlockData:   "EndBlockData",
	tagReset:          "Reset",
	tagBlockDataLong:  "BlockDataLong",
	tagException:      "Exception",
	tagLongString:     "LongString",
	tagProxyClassDesc: "ProxyClassDesc",
	tagEnum:           "Enum",
}

func (t tag) String() string {
	if t < tagCount {
		return tagNames[t]
	}
	return "Unknown"
}

// classDescTags is the allow-list enforced at every position that expects a
// class description: a real descriptor, a proxy descriptor, null, or a back
// reference to a previously-seen descriptor.
var classDescTags = []tag{tagClassDesc, tagProxyClassDesc, tagNull, tagReference}
