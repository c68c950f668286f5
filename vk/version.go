package vk

import "fmt"

// Version is a packed Vulkan version number (VK_MAKE_VERSION layout:
// 10 bits major, 10 bits minor, 12 bits patch).
type Version uint32

// MakeVersion packs major.minor.patch into a Version.
func MakeVersion(major, minor, patch uint32) Version {
	return Version(major<<22 | minor<<12 | patch)
}

// APIVersion10 is the baseline instance API version. Loaders that do not
// export vkEnumerateInstanceVersion report this.
const APIVersion10 = Version(1 << 22)

func (v Version) Major() uint32 { return uint32(v >> 22) }
func (v Version) Minor() uint32 { return uint32(v >> 12 & 0x3ff) }
func (v Version) Patch() uint32 { return uint32(v & 0xfff) }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}
