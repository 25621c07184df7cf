/*
 *     Copyright 2023 The NetBox LoadBalancer Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package choices defines the option sets for enumerated model fields.
// Administrators can extend a set with additional values at startup, so
// membership is checked against the set at runtime instead of a closed
// compile-time enum.
package choices

import "strings"

// Choice is a single option: the stored value, the label rendered in
// presentation surfaces and a hint color for UI badges.
type Choice struct {
	Value string `yaml:"value" mapstructure:"value" json:"value"`
	Label string `yaml:"label" mapstructure:"label" json:"label"`
	Color string `yaml:"color,omitempty" mapstructure:"color,omitempty" json:"color,omitempty"`
}

// Set is an ordered option set for one model field.
type Set struct {
	// Key identifies the set, e.g. "LoadBalancer.platform".
	Key     string
	Default string
	Choices []Choice
}

// Contains reports whether value is a member of the set.
func (s *Set) Contains(value string) bool {
	for _, c := range s.Choices {
		if c.Value == value {
			return true
		}
	}

	return false
}

// Label returns the display label for value. Unknown values fall back to
// the value itself so presentation never renders an empty label.
func (s *Set) Label(value string) string {
	for _, c := range s.Choices {
		if c.Value == value {
			return c.Label
		}
	}

	return value
}

// Values returns the member values in declaration order.
func (s *Set) Values() []string {
	values := make([]string, 0, len(s.Choices))
	for _, c := range s.Choices {
		values = append(values, c.Value)
	}

	return values
}

// Extend appends extra choices to the set, skipping values already present.
func (s *Set) Extend(extra []Choice) {
	for _, c := range extra {
		if !s.Contains(c.Value) {
			s.Choices = append(s.Choices, c)
		}
	}
}

const (
	PlatformF5      = "f5"
	PlatformHAProxy = "haproxy"
	PlatformCitrix  = "citrix"
	PlatformNginx   = "nginx"
	PlatformAWS     = "aws"
	PlatformAzure   = "azure"
	PlatformOther   = "other"
)

const (
	LoadBalancerStatusActive         = "active"
	LoadBalancerStatusPlanned        = "planned"
	LoadBalancerStatusMaintenance    = "maintenance"
	LoadBalancerStatusDecommissioned = "decommissioned"
)

const (
	VirtualServerStatusActive   = "active"
	VirtualServerStatusPlanned  = "planned"
	VirtualServerStatusDisabled = "disabled"
)

const (
	ProtocolTCP   = "tcp"
	ProtocolUDP   = "udp"
	ProtocolHTTP  = "http"
	ProtocolHTTPS = "https"
	ProtocolOther = "other"
)

const (
	MethodRoundRobin       = "round-robin"
	MethodLeastConnections = "least-connections"
	MethodIPHash           = "ip-hash"
	MethodWeighted         = "weighted"
	MethodOther            = "other"
)

const (
	PoolMemberStatusActive   = "active"
	PoolMemberStatusDrain    = "drain"
	PoolMemberStatusDisabled = "disabled"
)

var LoadBalancerPlatform = &Set{
	Key:     "LoadBalancer.platform",
	Default: "",
	Choices: []Choice{
		{Value: PlatformF5, Label: "F5 BIG-IP"},
		{Value: PlatformHAProxy, Label: "HAProxy"},
		{Value: PlatformCitrix, Label: "Citrix ADC"},
		{Value: PlatformNginx, Label: "NGINX"},
		{Value: PlatformAWS, Label: "AWS ELB/ALB"},
		{Value: PlatformAzure, Label: "Azure LB"},
		{Value: PlatformOther, Label: "Other"},
	},
}

var LoadBalancerStatus = &Set{
	Key:     "LoadBalancer.status",
	Default: LoadBalancerStatusActive,
	Choices: []Choice{
		{Value: LoadBalancerStatusActive, Label: "Active", Color: "green"},
		{Value: LoadBalancerStatusPlanned, Label: "Planned", Color: "cyan"},
		{Value: LoadBalancerStatusMaintenance, Label: "Maintenance", Color: "yellow"},
		{Value: LoadBalancerStatusDecommissioned, Label: "Decommissioned", Color: "gray"},
	},
}

var VirtualServerStatus = &Set{
	Key:     "VirtualServer.status",
	Default: VirtualServerStatusActive,
	Choices: []Choice{
		{Value: VirtualServerStatusActive, Label: "Active", Color: "green"},
		{Value: VirtualServerStatusPlanned, Label: "Planned", Color: "cyan"},
		{Value: VirtualServerStatusDisabled, Label: "Disabled", Color: "red"},
	},
}

var VirtualServerProtocol = &Set{
	Key:     "VirtualServer.protocol",
	Default: ProtocolHTTP,
	Choices: []Choice{
		{Value: ProtocolTCP, Label: "TCP"},
		{Value: ProtocolUDP, Label: "UDP"},
		{Value: ProtocolHTTP, Label: "HTTP"},
		{Value: ProtocolHTTPS, Label: "HTTPS"},
		{Value: ProtocolOther, Label: "Other"},
	},
}

var PoolMethod = &Set{
	Key:     "Pool.method",
	Default: MethodRoundRobin,
	Choices: []Choice{
		{Value: MethodRoundRobin, Label: "Round Robin"},
		{Value: MethodLeastConnections, Label: "Least Connections"},
		{Value: MethodIPHash, Label: "IP Hash"},
		{Value: MethodWeighted, Label: "Weighted"},
		{Value: MethodOther, Label: "Other"},
	},
}

var PoolProtocol = &Set{
	Key:     "Pool.protocol",
	Default: ProtocolHTTP,
	Choices: []Choice{
		{Value: ProtocolTCP, Label: "TCP"},
		{Value: ProtocolUDP, Label: "UDP"},
		{Value: ProtocolHTTP, Label: "HTTP"},
		{Value: ProtocolHTTPS, Label: "HTTPS"},
		{Value: ProtocolOther, Label: "Other"},
	},
}

var PoolMemberStatus = &Set{
	Key:     "PoolMember.status",
	Default: PoolMemberStatusActive,
	Choices: []Choice{
		{Value: PoolMemberStatusActive, Label: "Active", Color: "green"},
		{Value: PoolMemberStatusDrain, Label: "Drain", Color: "yellow"},
		{Value: PoolMemberStatusDisabled, Label: "Disabled", Color: "red"},
	},
}

var sets = []*Set{
	LoadBalancerPlatform,
	LoadBalancerStatus,
	VirtualServerStatus,
	VirtualServerProtocol,
	PoolMethod,
	PoolProtocol,
	PoolMemberStatus,
}

// Lookup returns the set registered under key, matching case-insensitively.
func Lookup(key string) (*Set, bool) {
	for _, s := range sets {
		if strings.EqualFold(s.Key, key) {
			return s, true
		}
	}

	return nil, false
}

// ExtendAll merges configured extra choices into the registered sets.
// Unknown keys are ignored so a stale config entry cannot break startup.
func ExtendAll(extra map[string][]Choice) {
	for key, cs := range extra {
		if s, ok := Lookup(key); ok {
			s.Extend(cs)
		}
	}
}
