// package nef provides support for parsing metadata out of NEF (Nikon
// Electronic File) raw image buffers: the standard TIFF directories, the
// Exif directory and the encrypted portions of the Nikon maker note.
package nef

import (
    "fmt"
    "errors"
)

var (
    ErrInvalidContainer     = errors.New( "not a valid NEF container" )
    ErrTruncatedBuffer      = errors.New( "truncated buffer" )
    ErrMissingExifDirectory = errors.New( "missing Exif directory" )
    ErrInvalidMakernote     = errors.New( "invalid Nikon maker note" )
    ErrDecrypt              = errors.New( "lens data decryption failed" )
    ErrUnsupportedFieldType = errors.New( "unsupported field type" )
)

// Rational is an unsigned TIFF rational, kept as the exact numerator and
// denominator pair found in the file.
type Rational struct {
    Numerator   uint32
    Denominator uint32
}

func (r Rational) Float( ) float64 {
    return float64(r.Numerator) / float64(r.Denominator)
}

func (r Rational) String( ) string {
    return fmt.Sprintf( "%d/%d", r.Numerator, r.Denominator )
}

type MeteringMode uint16

const (
    MeteringUnknown MeteringMode = iota
    MeteringAverage
    MeteringCenterWeightedAverage
    MeteringSpot
    MeteringMultiSpot
    MeteringMultiSegment
    MeteringPartial
)

func (m MeteringMode) String( ) string {
    switch m {
    case MeteringUnknown: return "Unknown"
    case MeteringAverage: return "Average"
    case MeteringCenterWeightedAverage: return "Center weighted average"
    case MeteringSpot: return "Spot"
    case MeteringMultiSpot: return "Multi-spot"
    case MeteringMultiSegment: return "Multi-segment"
    case MeteringPartial: return "Partial"
    }
    return "Other"
}

// Metadata is the result of a parse. String fields are empty and pointer
// fields are nil when the source buffer did not carry the value; a present
// pointer always points at a decoded value.
type Metadata struct {
    Model               string
    DateTimeOriginal    string

    ExposureTime        *Rational
    FNumber             *Rational
    FocalLength         *Rational
    Metering            *MeteringMode
    ISO                 *uint32

    MakernoteVersion    string
    SerialNumber        string
    FocusMode           string
    Quality             string
    WhiteBalance        string
    FlashSetting        string
    LensModel           string
    ShutterCount        *uint32

    PreviewOffset       uint32
}

const (                         // primary and Exif IFD tags
    _Model              = 0x110
    _SubIfds            = 0x14a
    _ExifIFD            = 0x8769

    _ExposureTime       = 0x829a
    _FNumber            = 0x829d
    _DateTimeOriginal   = 0x9003
    _MeteringMode       = 0x9207
    _FocalLength        = 0x920a
    _MakerNote          = 0x927c
)

// parser carries the state threaded through one parse: the buffer desc, the
// record under construction and the values whose interpretation must wait
// for other directories (lens resolution needs the serial number and
// shutter count, which live in separate maker note entries).
type parser struct {
    d               *desc
    m               *Metadata

    exifOffset      uint32
    makernoteOffset uint32

    lens            []byte      // copy of the lens data payload
    lensType        byte
    hasLensType     bool
}

// Parse decodes the metadata of the NEF image in data. The buffer is not
// modified. Parsing is strict about structure (a malformed container or a
// truncated directory is an error) but lenient about content: a maker note
// that fails to decode, or lens data that fails to decrypt, yields a
// partial Metadata and a nil error.
func Parse( data []byte ) (*Metadata, error) {
    p := parser{ d: &desc{ data: data }, m: new(Metadata) }

    ifd0, err := p.d.checkHeader( )
    if err != nil {
        return nil, fmt.Errorf( "Parse: %w", err )
    }
    // the offset of the following directory is read but not chased: IFD1
    // describes the embedded thumbnail, which carries no exposure data.
    if _, err = p.d.readIFD( ifd0, p.primaryTag ); err != nil {
        return nil, fmt.Errorf( "Parse: %w", err )
    }
    if err = p.walkExif( ); err != nil {
        return nil, fmt.Errorf( "Parse: %w", err )
    }
    p.processMakernote( )
    p.resolveLens( )
    return p.m, nil
}

func (p *parser) primaryTag( ifd *ifdd ) error {
    switch ifd.fTag {
    case _Model:
        s, err := ifd.asciiValue( )
        if err != nil {
            return err
        }
        p.m.Model = s
    case _ExifIFD:
        offset, err := ifd.longValue( )
        if err != nil {
            return err
        }
        p.exifOffset = offset
    case _SubIfds:
        return p.subIfdTag( ifd )
    }
    return nil
}

// subIfdTag records the offset of the first sub IFD, which locates the full
// size preview. With more than 2 sub IFDs the offsets no longer fit in the
// value field and the first one sits out of line.
func (p *parser) subIfdTag( ifd *ifdd ) error {
    offset, err := ifd.desc.getUnsignedLong( ifd.sOffset )
    if err != nil {
        return err
    }
    if ifd.fCount > 2 {
        if offset, err = ifd.desc.getUnsignedLong( offset ); err != nil {
            return err
        }
    }
    p.m.PreviewOffset = offset
    return nil
}

func (p *parser) walkExif( ) error {
    if p.exifOffset == 0 || uint64(p.exifOffset) >= uint64(len(p.d.data)) {
        return fmt.Errorf( "walkExif: offset %#x: %w",
                           p.exifOffset, ErrMissingExifDirectory )
    }
    if _, err := p.d.readIFD( p.exifOffset, p.exifTag ); err != nil {
        return err
    }
    return nil
}

func (p *parser) exifTag( ifd *ifdd ) error {
    switch ifd.fTag {
    case _ExposureTime:
        return storeRational( &p.m.ExposureTime, ifd )
    case _FNumber:
        return storeRational( &p.m.FNumber, ifd )
    case _FocalLength:
        return storeRational( &p.m.FocalLength, ifd )
    case _DateTimeOriginal:
        s, err := ifd.asciiValue( )
        if err != nil {
            return err
        }
        p.m.DateTimeOriginal = s
    case _MeteringMode:
        v, err := ifd.shortValue( )
        if err != nil {
            return err
        }
        m := MeteringMode(v)
        p.m.Metering = &m
    case _MakerNote:
        // the maker note embeds its own structure: only its position is
        // taken here, the walk happens after the Exif directory is done.
        offset, err := ifd.desc.getUnsignedLong( ifd.sOffset )
        if err != nil {
            return err
        }
        p.makernoteOffset = offset
    }
    return nil
}

func storeRational( dst **Rational, ifd *ifdd ) error {
    r, err := ifd.rationalValue( )
    if err != nil {
        return err
    }
    *dst = &r
    return nil
}
