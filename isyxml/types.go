package isyxml

import "encoding/xml"

// RestResponse is the hub's acknowledgement for a command request.
//
//	<RestResponse succeeded="true"><status>200</status></RestResponse>
type RestResponse struct {
	XMLName   xml.Name `xml:"RestResponse"`
	Succeeded bool     `xml:"succeeded,attr"`
	Status    int      `xml:"status"`
}

// Wire structures for the hub's node-list payload (/rest/nodes).
// Field values stay strings where the hub's vocabulary is open-ended.

type xmlProperty struct {
	ID        string `xml:"id,attr"`
	Value     string `xml:"value,attr"`
	Formatted string `xml:"formatted,attr"`
	UOM       string `xml:"uom,attr"`
}

type xmlNode struct {
	Flag       string        `xml:"flag,attr"`
	Address    string        `xml:"address"`
	Name       string        `xml:"name"`
	Type       string        `xml:"type"`
	Enabled    string        `xml:"enabled"`
	PNode      string        `xml:"pnode"`
	ELKID      string        `xml:"ELK_ID"`
	Status     string        `xml:"status"`
	Properties []xmlProperty `xml:"property"`
}

type xmlLink struct {
	Type    string `xml:"type,attr"`
	Address string `xml:",chardata"`
}

type xmlGroup struct {
	Flag    string `xml:"flag,attr"`
	Address string `xml:"address"`
	Name    string `xml:"name"`
	Members struct {
		Links []xmlLink `xml:"link"`
	} `xml:"members"`
}

type xmlFolder struct {
	Flag    string `xml:"flag,attr"`
	Address string `xml:"address"`
	Name    string `xml:"name"`
}

// Wire structure for the hub's program-list payload
// (/rest/programs?subfolders=true). Identity and run status ride on
// attributes, everything else on child elements.
type xmlProgram struct {
	ID           string `xml:"id,attr"`
	ParentID     string `xml:"parentId,attr"`
	Status       string `xml:"status,attr"`
	Folder       string `xml:"folder,attr"`
	Name         string `xml:"name"`
	Enabled      string `xml:"enabled"`
	RunAtStartup string `xml:"runAtStartup"`
	LastRunTime  string `xml:"lastRunTime"`
	LastFinish   string `xml:"lastFinishTime"`
	NextRun      string `xml:"nextScheduledRunTime"`
}
