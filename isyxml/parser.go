package isyxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cseelye/simpleisy/entity"
)

// hubTimeLayout is the hub's timestamp format after zero-padding the hour.
// The hub pads single-digit hours with a second space instead of a zero
// ("2026/08/30  9:01:02 PM").
const hubTimeLayout = "2006/01/02 03:04:05 PM"

// ParseNodes turns a raw node-list payload into entity records in document
// order. The payload is normally a <nodes> collection; a single bare
// <node>, <group>, or <folder> element is also accepted.
//
// Parsing is all-or-nothing: any record that does not conform to the hub
// schema fails the whole call with ErrParse and nothing is returned.
func ParseNodes(data []byte) ([]entity.Entity, error) {
	start, dec, err := rootElement(data)
	if err != nil {
		return nil, err
	}

	switch start.Name.Local {
	case "nodes":
	case "node", "group", "folder":
		e, decErr := decodeNodeChild(dec, start)
		if decErr != nil {
			return nil, decErr
		}
		return []entity.Entity{e}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected element <%s> in node list", ErrParse, start.Name.Local)
	}

	entities := []entity.Entity{}
	for {
		tok, tokErr := dec.Token()
		if errors.Is(tokErr, io.EOF) {
			break
		}
		if tokErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, tokErr)
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "node", "group", "folder":
			e, decErr := decodeNodeChild(dec, se)
			if decErr != nil {
				return nil, decErr
			}
			entities = append(entities, e)
		default:
			// <root> and unknown siblings carry no entity data
			if skipErr := dec.Skip(); skipErr != nil {
				return nil, fmt.Errorf("%w: <%s>: %v", ErrParse, se.Name.Local, skipErr)
			}
		}
	}

	return entities, nil
}

// ParsePrograms turns a raw program-list payload into entity records in
// document order. Program folder entries come back with KindFolder; runnable
// programs with KindProgram. Same all-or-nothing contract as ParseNodes.
func ParsePrograms(data []byte) ([]entity.Entity, error) {
	start, dec, err := rootElement(data)
	if err != nil {
		return nil, err
	}

	switch start.Name.Local {
	case "programs":
	case "program":
		var p xmlProgram
		if decErr := dec.DecodeElement(&p, &start); decErr != nil {
			return nil, fmt.Errorf("%w: <program>: %v", ErrParse, decErr)
		}
		e, entErr := programEntity(p)
		if entErr != nil {
			return nil, entErr
		}
		return []entity.Entity{e}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected element <%s> in program list", ErrParse, start.Name.Local)
	}

	entities := []entity.Entity{}
	for {
		tok, tokErr := dec.Token()
		if errors.Is(tokErr, io.EOF) {
			break
		}
		if tokErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, tokErr)
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		if se.Name.Local != "program" {
			if skipErr := dec.Skip(); skipErr != nil {
				return nil, fmt.Errorf("%w: <%s>: %v", ErrParse, se.Name.Local, skipErr)
			}
			continue
		}

		var p xmlProgram
		if decErr := dec.DecodeElement(&p, &se); decErr != nil {
			return nil, fmt.Errorf("%w: <program>: %v", ErrParse, decErr)
		}
		e, entErr := programEntity(p)
		if entErr != nil {
			return nil, entErr
		}
		entities = append(entities, e)
	}

	return entities, nil
}

// ParseResponse parses the hub's command acknowledgement.
func ParseResponse(data []byte) (*RestResponse, error) {
	var resp RestResponse
	if err := xml.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("%w: <RestResponse>: %v", ErrParse, err)
	}
	return &resp, nil
}

// rootElement returns the first start element of the payload and a decoder
// positioned on it.
func rootElement(data []byte) (xml.StartElement, *xml.Decoder, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return xml.StartElement{}, nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se, dec, nil
		}
	}
}

func decodeNodeChild(dec *xml.Decoder, start xml.StartElement) (entity.Entity, error) {
	switch start.Name.Local {
	case "node":
		var n xmlNode
		if err := dec.DecodeElement(&n, &start); err != nil {
			return entity.Entity{}, fmt.Errorf("%w: <node>: %v", ErrParse, err)
		}
		return nodeEntity(n)
	case "group":
		var g xmlGroup
		if err := dec.DecodeElement(&g, &start); err != nil {
			return entity.Entity{}, fmt.Errorf("%w: <group>: %v", ErrParse, err)
		}
		return groupEntity(g)
	case "folder":
		var f xmlFolder
		if err := dec.DecodeElement(&f, &start); err != nil {
			return entity.Entity{}, fmt.Errorf("%w: <folder>: %v", ErrParse, err)
		}
		return folderEntity(f)
	}
	return entity.Entity{}, fmt.Errorf("%w: unexpected element <%s>", ErrParse, start.Name.Local)
}

func nodeEntity(n xmlNode) (entity.Entity, error) {
	address := strings.TrimSpace(n.Address)
	if address == "" {
		return entity.Entity{}, fmt.Errorf("%w: <node name=%q>", ErrMissingAddress, n.Name)
	}

	e := entity.Entity{
		Address: address,
		Name:    n.Name,
		Kind:    entity.KindDevice,
		Enabled: !strings.EqualFold(n.Enabled, "false"),
	}

	props := make(map[string]string)
	setProp(props, "flag", n.Flag)
	setProp(props, "type", n.Type)
	setProp(props, "pnode", n.PNode)
	setProp(props, "ELK_ID", n.ELKID)

	for _, p := range n.Properties {
		setProp(props, p.ID, p.Value)
		setProp(props, p.ID+".formatted", strings.TrimSpace(p.Formatted))
		setProp(props, p.ID+".uom", p.UOM)
		if p.ID == "ST" {
			e.State = p.Value
		}
	}

	// Simplified payloads report status as its own element; it wins over
	// the ST property when both are present.
	if s := strings.TrimSpace(n.Status); s != "" {
		e.State = s
	}

	if len(props) > 0 {
		e.Properties = props
	}
	return e, nil
}

func groupEntity(g xmlGroup) (entity.Entity, error) {
	address := strings.TrimSpace(g.Address)
	if address == "" {
		return entity.Entity{}, fmt.Errorf("%w: <group name=%q>", ErrMissingAddress, g.Name)
	}

	e := entity.Entity{
		Address: address,
		Name:    g.Name,
		Kind:    entity.KindGroup,
		Enabled: true,
	}

	for _, link := range g.Members.Links {
		if member := strings.TrimSpace(link.Address); member != "" {
			e.Members = append(e.Members, member)
		}
	}

	props := make(map[string]string)
	setProp(props, "flag", g.Flag)
	if len(props) > 0 {
		e.Properties = props
	}
	return e, nil
}

func folderEntity(f xmlFolder) (entity.Entity, error) {
	address := strings.TrimSpace(f.Address)
	if address == "" {
		return entity.Entity{}, fmt.Errorf("%w: <folder name=%q>", ErrMissingAddress, f.Name)
	}

	e := entity.Entity{
		Address: address,
		Name:    f.Name,
		Kind:    entity.KindFolder,
		Enabled: true,
	}

	props := make(map[string]string)
	setProp(props, "flag", f.Flag)
	if len(props) > 0 {
		e.Properties = props
	}
	return e, nil
}

func programEntity(p xmlProgram) (entity.Entity, error) {
	id := strings.TrimSpace(p.ID)
	if id == "" {
		return entity.Entity{}, fmt.Errorf("%w: <program name=%q>", ErrMissingAddress, p.Name)
	}

	kind := entity.KindProgram
	if strings.EqualFold(p.Folder, "true") {
		kind = entity.KindFolder
	}

	e := entity.Entity{
		Address:  id,
		Name:     p.Name,
		Kind:     kind,
		State:    p.Status,
		Enabled:  !strings.EqualFold(p.Enabled, "false"),
		ParentID: p.ParentID,
	}

	var err error
	if e.LastRunAt, err = parseHubTime(p.LastRunTime); err != nil {
		return entity.Entity{}, fmt.Errorf("%w: <program id=%q> lastRunTime %q", ErrParse, id, p.LastRunTime)
	}
	if e.LastFinishedAt, err = parseHubTime(p.LastFinish); err != nil {
		return entity.Entity{}, fmt.Errorf("%w: <program id=%q> lastFinishTime %q", ErrParse, id, p.LastFinish)
	}
	if e.NextRunAt, err = parseHubTime(p.NextRun); err != nil {
		return entity.Entity{}, fmt.Errorf("%w: <program id=%q> nextScheduledRunTime %q", ErrParse, id, p.NextRun)
	}

	props := make(map[string]string)
	setProp(props, "runAtStartup", p.RunAtStartup)
	if len(props) > 0 {
		e.Properties = props
	}
	return e, nil
}

// parseHubTime parses the hub's local timestamp format. Empty values are
// legitimate (a program that never ran) and come back as nil.
func parseHubTime(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	// Zero-pad single-digit hours, which the hub space-pads.
	normalized := strings.ReplaceAll(value, "  ", " 0")
	t, err := time.Parse(hubTimeLayout, normalized)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func setProp(props map[string]string, key, value string) {
	if value != "" {
		props[key] = value
	}
}
