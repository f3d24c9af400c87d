package nef

// generic TIFF structure: field types, bounds checked buffer access, IFD
// traversal and field value decoding. Nothing in this file knows what a tag
// means; tag semantics belong to the dispatch functions in nef.go and
// nikon.go.

import (
    "fmt"
    "errors"
    "encoding/binary"
)

type tTag   uint16              // TIFF tag
type tType  uint16              // TIFF field type

const (                         // TIFF field types
    _UnsignedByte tType = 1 + iota
    _ASCIIString
    _UnsignedShort
    _UnsignedLong
    _UnsignedRational
    _SignedByte
    _Undefined
    _SignedShort
    _SignedLong
    _SignedRational
    _Float
    _Double
)

const (
    _ShortSize      = 2
    _LongSize       = 4
    _RationalSize   = 8

    _headerSize     = 8         // byte order, magic, first IFD offset
    _IfdEntrySize   = 12        // tag, type, count, value|offset
    _valOffSize     = 4         // a value fits in the entry if <= 4 bytes

    _tiffMagic      = 0x2a
)

func getTiffTString( t tType ) string {
    switch t {
        case _UnsignedByte: return "Unsigned byte"
        case _ASCIIString: return "ASCII string"
        case _UnsignedShort: return "Unsigned short"
        case _UnsignedLong: return "Unsigned long"
        case _UnsignedRational: return "Unsigned rational"
        case _SignedByte: return "Signed byte"
        case _Undefined: return "Undefined"
        case _SignedShort: return "Signed short"
        case _SignedLong: return "Signed long"
        case _SignedRational: return "Signed rational"
        case _Float: return "Float"
        case _Double: return "Double"
        default: break
    }
    return fmt.Sprintf( "Unknown (%d)", t )
}

func getTiffTypeSize( t tType ) uint32 {
    switch t {
    case _UnsignedByte, _SignedByte, _ASCIIString, _Undefined:
        return 1
    case _UnsignedShort, _SignedShort:
        return 2
    case _UnsignedLong, _SignedLong, _Float:
        return 4
    case _UnsignedRational, _SignedRational, _Double:
        return 8
    }
    return 0
}

// desc gives bounds checked access to one TIFF scope. base is the origin
// added to every out of line value offset: 0 for the top level structure,
// the nested TIFF header position for a maker note. One desc exists per
// scope per parse, so concurrent parses of separate files share nothing.
type desc struct {
    data    []byte
    base    uint32
    endian  binary.ByteOrder
}

// get<type> functions validate offset and length against the buffer before
// every read; any computation that would land past the end fails with
// ErrTruncatedBuffer instead of dereferencing.

func (d *desc) getBytes( offset, count uint32 ) ([]byte, error) {
    end := uint64(offset) + uint64(count)
    if end > uint64(len(d.data)) {
        return nil, fmt.Errorf( "getBytes: %d bytes @%#x exceed buffer (%d bytes): %w",
                                count, offset, len(d.data), ErrTruncatedBuffer )
    }
    return d.data[offset:end], nil
}

func (d *desc) getUnsignedShort( offset uint32 ) (uint16, error) {
    b, err := d.getBytes( offset, _ShortSize )
    if err != nil {
        return 0, err
    }
    return d.endian.Uint16( b ), nil
}

func (d *desc) getUnsignedLong( offset uint32 ) (uint32, error) {
    b, err := d.getBytes( offset, _LongSize )
    if err != nil {
        return 0, err
    }
    return d.endian.Uint32( b ), nil
}

// checkHeader validates the top level TIFF header and returns the offset of
// the primary IFD. A NEF container is always little endian ("II"); any
// other byte ordering or a wrong magic number fails with ErrInvalidContainer.
func (d *desc) checkHeader( ) (uint32, error) {
    b, err := d.getBytes( 0, _headerSize )
    if err != nil {
        return 0, err
    }
    if b[0] != 'I' || b[1] != 'I' {
        return 0, fmt.Errorf( "checkHeader: byte ordering %q: %w",
                              b[0:2], ErrInvalidContainer )
    }
    d.endian = binary.LittleEndian
    if magic := d.endian.Uint16( b[2:] ); magic != _tiffMagic {
        return 0, fmt.Errorf( "checkHeader: invalid identifier %#02x: %w",
                              magic, ErrInvalidContainer )
    }
    return d.endian.Uint32( b[4:] ), nil
}

// ifdd is the cursor over one IFD during a walk. The f* fields describe the
// entry currently dispatched; sOffset is the absolute position of its
// 4-byte value|offset field.
type ifdd struct {
    desc    *desc

    fTag    tTag                // current field tag
    fType   tType               // current field type
    fCount  uint32              // current field count
    sOffset uint32              // current field value or offset position
}

// readIFD enumerates the directory at start, calling dispatch for each
// entry in on-disk order, and returns the offset of the next directory in
// the chain (0 if none). The whole directory frame is validated against the
// buffer before the first entry is read. A dispatch failure on one entry
// loses only that entry, since an unexpected type or count says nothing
// about its neighbors; a truncated buffer aborts the walk because past that
// point every offset is suspect.
func (d *desc) readIFD( start uint32,
                        dispatch func( *ifdd ) error ) (uint32, error) {
    n, err := d.getUnsignedShort( start )
    if err != nil {
        return 0, fmt.Errorf( "readIFD: directory @%#x: %w", start, err )
    }
    end := uint64(start) + _ShortSize + uint64(n) * _IfdEntrySize + _LongSize
    if end > uint64(len(d.data)) {
        return 0, fmt.Errorf(
            "readIFD: %d entries @%#x exceed buffer (%d bytes): %w",
            n, start, len(d.data), ErrTruncatedBuffer )
    }

    // the frame is in bounds: entry fields can be read directly
    ifd := ifdd{ desc: d }
    offset := start + _ShortSize
    for i := uint16(0); i < n; i++ {
        ifd.fTag = tTag(d.endian.Uint16( d.data[offset:] ))
        ifd.fType = tType(d.endian.Uint16( d.data[offset+2:] ))
        ifd.fCount = d.endian.Uint32( d.data[offset+4:] )
        ifd.sOffset = offset + 8
        if err = dispatch( &ifd ); err != nil {
            if errors.Is( err, ErrTruncatedBuffer ) {
                return 0, fmt.Errorf( "readIFD: tag %#04x @%#x: %w",
                                      ifd.fTag, offset, err )
            }
        }
        offset += _IfdEntrySize
    }
    return d.endian.Uint32( d.data[offset:] ), nil
}

// valueOffset resolves the value|offset field of an entry whose data does
// not fit inline, adding the scope base (file start for top level IFDs, the
// nested TIFF header for maker note IFDs).
func (ifd *ifdd) valueOffset( ) (uint32, error) {
    v, err := ifd.desc.getUnsignedLong( ifd.sOffset )
    if err != nil {
        return 0, err
    }
    return ifd.desc.base + v, nil
}

// rawValue returns the payload bytes of the current entry: inline from the
// value field when count * type size fits in 4 bytes, out of line at
// base + offset otherwise. Exactly count values are read, no more.
func (ifd *ifdd) rawValue( ) ([]byte, error) {
    size := uint64(ifd.fCount) * uint64(getTiffTypeSize( ifd.fType ))
    if size > uint64(len(ifd.desc.data)) {
        return nil, fmt.Errorf( "rawValue: count %d exceeds buffer: %w",
                                ifd.fCount, ErrTruncatedBuffer )
    }
    if size <= _valOffSize {
        return ifd.desc.getBytes( ifd.sOffset, uint32(size) )
    }
    offset, err := ifd.valueOffset( )
    if err != nil {
        return nil, err
    }
    return ifd.desc.getBytes( offset, uint32(size) )
}

// rationalValue decodes an unsigned rational entry: two consecutive 32-bit
// values, numerator then denominator, always out of line since a rational
// does not fit in the value field. A zero denominator is an error, never a
// silent infinity.
func (ifd *ifdd) rationalValue( ) (Rational, error) {
    if ifd.fType != _UnsignedRational {
        return Rational{}, fmt.Errorf( "rationalValue: invalid type (%s): %w",
                        getTiffTString( ifd.fType ), ErrUnsupportedFieldType )
    }
    if ifd.fCount != 1 {
        return Rational{}, fmt.Errorf( "rationalValue: invalid count (%d): %w",
                                       ifd.fCount, ErrUnsupportedFieldType )
    }
    offset, err := ifd.valueOffset( )
    if err != nil {
        return Rational{}, err
    }
    b, err := ifd.desc.getBytes( offset, _RationalSize )
    if err != nil {
        return Rational{}, err
    }
    r := Rational{ ifd.desc.endian.Uint32( b ), ifd.desc.endian.Uint32( b[4:] ) }
    if r.Denominator == 0 {
        return Rational{}, fmt.Errorf( "rationalValue: zero denominator @%#x",
                                       offset )
    }
    return r, nil
}

// asciiValue decodes an ASCII entry. Strings of 4 bytes or fewer are packed
// into the value field itself and are not necessarily terminated; exactly
// fCount bytes are read either way, and one trailing NUL is dropped when
// present since fixed length fields conventionally end with a terminator.
func (ifd *ifdd) asciiValue( ) (string, error) {
    if ifd.fType != _ASCIIString {
        return "", fmt.Errorf( "asciiValue: invalid type (%s): %w",
                        getTiffTString( ifd.fType ), ErrUnsupportedFieldType )
    }
    b, err := ifd.rawValue( )
    if err != nil {
        return "", err
    }
    if n := len(b); n > 0 && b[n-1] == 0 {
        b = b[:n-1]
    }
    return string(b), nil
}

// undefinedValue returns the raw bytes of an undefined type entry, with the
// same inline versus out of line rule as ASCII and no text assumption.
func (ifd *ifdd) undefinedValue( ) ([]byte, error) {
    if ifd.fType != _Undefined {
        return nil, fmt.Errorf( "undefinedValue: invalid type (%s): %w",
                        getTiffTString( ifd.fType ), ErrUnsupportedFieldType )
    }
    return ifd.rawValue( )
}

func (ifd *ifdd) longValue( ) (uint32, error) {
    if ifd.fType != _UnsignedLong {
        return 0, fmt.Errorf( "longValue: invalid type (%s): %w",
                        getTiffTString( ifd.fType ), ErrUnsupportedFieldType )
    }
    if ifd.fCount != 1 {
        return 0, fmt.Errorf( "longValue: invalid count (%d): %w",
                              ifd.fCount, ErrUnsupportedFieldType )
    }
    return ifd.desc.getUnsignedLong( ifd.sOffset )
}

func (ifd *ifdd) shortValue( ) (uint16, error) {
    if ifd.fType != _UnsignedShort {
        return 0, fmt.Errorf( "shortValue: invalid type (%s): %w",
                        getTiffTString( ifd.fType ), ErrUnsupportedFieldType )
    }
    if ifd.fCount != 1 {
        return 0, fmt.Errorf( "shortValue: invalid count (%d): %w",
                              ifd.fCount, ErrUnsupportedFieldType )
    }
    return ifd.desc.getUnsignedShort( ifd.sOffset )
}
