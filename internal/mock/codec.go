// Package mock implements an in-process emulation of fldigi's XML-RPC
// server, so clients can be exercised without a running fldigi. It only
// models the state the control interface exposes.
package mock

import (
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type methodCall struct {
	XMLName xml.Name `xml:"methodCall"`
	Name    string   `xml:"methodName"`
	Params  []struct {
		Value value `xml:"value"`
	} `xml:"params>param"`
}

// value is a single decoded XML-RPC parameter.
type value struct {
	Int      *string `xml:"int"`
	I4       *string `xml:"i4"`
	Boolean  *string `xml:"boolean"`
	Double   *string `xml:"double"`
	String   *string `xml:"string"`
	Base64   *string `xml:"base64"`
	Chardata string  `xml:",chardata"` // a bare <value> is a string
}

func parseCall(r io.Reader) (method string, params []value, err error) {
	var call methodCall
	if err := xml.NewDecoder(r).Decode(&call); err != nil {
		return "", nil, err
	}
	params = make([]value, 0, len(call.Params))
	for _, p := range call.Params {
		params = append(params, p.Value)
	}
	return call.Name, params, nil
}

func (v value) asString() string {
	switch {
	case v.String != nil:
		return *v.String
	case v.Base64 != nil:
		b, _ := base64.StdEncoding.DecodeString(strings.TrimSpace(*v.Base64))
		return string(b)
	default:
		return strings.TrimSpace(v.Chardata)
	}
}

func (v value) asInt() (int, error) {
	switch {
	case v.Int != nil:
		return strconv.Atoi(strings.TrimSpace(*v.Int))
	case v.I4 != nil:
		return strconv.Atoi(strings.TrimSpace(*v.I4))
	case v.Double != nil:
		f, err := strconv.ParseFloat(strings.TrimSpace(*v.Double), 64)
		return int(f), err
	default:
		return strconv.Atoi(strings.TrimSpace(v.Chardata))
	}
}

func (v value) asFloat() (float64, error) {
	if v.Double != nil {
		return strconv.ParseFloat(strings.TrimSpace(*v.Double), 64)
	}
	if n, err := v.asInt(); err == nil {
		return float64(n), nil
	}
	return strconv.ParseFloat(strings.TrimSpace(v.Chardata), 64)
}

func (v value) asBool() (bool, error) {
	s := strings.TrimSpace(v.Chardata)
	if v.Boolean != nil {
		s = strings.TrimSpace(*v.Boolean)
	}
	switch s {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

func (v value) asBytes() []byte {
	if v.Base64 != nil {
		b, _ := base64.StdEncoding.DecodeString(strings.TrimSpace(*v.Base64))
		return b
	}
	return []byte(v.asString())
}

// methodSpec is an element of the fldigi.list reply.
type methodSpec struct {
	Name      string
	Signature string
	Help      string
}

func writeResponse(w io.Writer, v interface{}) error {
	var buf strings.Builder
	buf.WriteString(xml.Header)
	buf.WriteString("<methodResponse><params><param>")
	if err := encodeValue(&buf, v); err != nil {
		return err
	}
	buf.WriteString("</param></params></methodResponse>")
	_, err := io.WriteString(w, buf.String())
	return err
}

func writeFault(w io.Writer, code int, s string) error {
	var buf strings.Builder
	buf.WriteString(xml.Header)
	buf.WriteString("<methodResponse><fault><value><struct>")
	fmt.Fprintf(&buf, "<member><name>faultCode</name><value><int>%d</int></value></member>", code)
	buf.WriteString("<member><name>faultString</name><value><string>")
	xml.EscapeText(&buf, []byte(s))
	buf.WriteString("</string></value></member>")
	buf.WriteString("</struct></value></fault></methodResponse>")
	_, err := io.WriteString(w, buf.String())
	return err
}

func encodeValue(buf *strings.Builder, v interface{}) error {
	switch t := v.(type) {
	case nil:
		buf.WriteString("<value></value>")
	case string:
		buf.WriteString("<value><string>")
		xml.EscapeText(buf, []byte(t))
		buf.WriteString("</string></value>")
	case bool:
		if t {
			buf.WriteString("<value><boolean>1</boolean></value>")
		} else {
			buf.WriteString("<value><boolean>0</boolean></value>")
		}
	case int:
		fmt.Fprintf(buf, "<value><int>%d</int></value>", t)
	case float64:
		fmt.Fprintf(buf, "<value><double>%s</double></value>", strconv.FormatFloat(t, 'f', -1, 64))
	case []byte:
		buf.WriteString("<value><base64>")
		buf.WriteString(base64.StdEncoding.EncodeToString(t))
		buf.WriteString("</base64></value>")
	case []string:
		buf.WriteString("<value><array><data>")
		for _, s := range t {
			if err := encodeValue(buf, s); err != nil {
				return err
			}
		}
		buf.WriteString("</data></array></value>")
	case []methodSpec:
		buf.WriteString("<value><array><data>")
		for _, m := range t {
			buf.WriteString("<value><struct>")
			for _, member := range []struct{ name, val string }{
				{"name", m.Name},
				{"signature", m.Signature},
				{"help", m.Help},
			} {
				fmt.Fprintf(buf, "<member><name>%s</name>", member.name)
				if err := encodeValue(buf, member.val); err != nil {
					return err
				}
				buf.WriteString("</member>")
			}
			buf.WriteString("</struct></value>")
		}
		buf.WriteString("</data></array></value>")
	default:
		return fmt.Errorf("mock: cannot encode %T", v)
	}
	return nil
}
